// Package docs holds the swagger document registered with swaggo at startup.
// Kept in sync by hand with the handler annotations; rerun `swag init` after
// changing the API surface.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/auth/login": {
            "post": {
                "description": "Issues an access token for a staff user",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Staff login",
                "parameters": [
                    {
                        "description": "Credentials",
                        "name": "login",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.LoginRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.LoginResponse"}},
                    "400": {"description": "Invalid request", "schema": {"$ref": "#/definitions/dto.ValidationErrorResponse"}},
                    "401": {"description": "Bad credentials", "schema": {"$ref": "#/definitions/dto.UnauthorizedErrorResponse"}},
                    "429": {"description": "Too many attempts", "schema": {"$ref": "#/definitions/dto.RateLimitedErrorResponse"}},
                    "500": {"description": "Internal error", "schema": {"$ref": "#/definitions/dto.InternalErrorResponse"}}
                }
            }
        },
        "/api/v1/auth/logout": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Revokes the presented access token",
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Logout",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "401": {"description": "Not authenticated", "schema": {"$ref": "#/definitions/dto.UnauthorizedErrorResponse"}},
                    "500": {"description": "Internal error", "schema": {"$ref": "#/definitions/dto.InternalErrorResponse"}}
                }
            }
        },
        "/api/v1/voice/query": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Classifies the utterance, renders a response and optionally synthesized audio",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["voice"],
                "summary": "Interpret a voice query",
                "parameters": [
                    {
                        "description": "Utterance",
                        "name": "query",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.VoiceQueryRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.VoiceQueryResponse"}},
                    "400": {"description": "Missing text", "schema": {"$ref": "#/definitions/dto.ValidationErrorResponse"}},
                    "401": {"description": "Not authenticated", "schema": {"$ref": "#/definitions/dto.UnauthorizedErrorResponse"}}
                }
            }
        },
        "/api/v1/wines": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List wines",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.WineListResponse"}},
                    "401": {"description": "Not authenticated", "schema": {"$ref": "#/definitions/dto.UnauthorizedErrorResponse"}}
                }
            }
        },
        "/api/v1/customers": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List customers",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CustomerListResponse"}},
                    "401": {"description": "Not authenticated", "schema": {"$ref": "#/definitions/dto.UnauthorizedErrorResponse"}}
                }
            }
        },
        "/api/v1/orders/summary": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Revenue is the sum of stored order totals, not price times quantity",
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Aggregate seed orders",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.OrderSummaryResponse"}},
                    "401": {"description": "Not authenticated", "schema": {"$ref": "#/definitions/dto.UnauthorizedErrorResponse"}}
                }
            }
        },
        "/api/v1/email/send": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Delivery is simulated unless SMTP is configured",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["email"],
                "summary": "Send an email directly",
                "parameters": [
                    {
                        "description": "Recipient and body",
                        "name": "email",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.SendEmailRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.EmailAck"}},
                    "400": {"description": "Invalid request", "schema": {"$ref": "#/definitions/dto.ValidationErrorResponse"}},
                    "401": {"description": "Not authenticated", "schema": {"$ref": "#/definitions/dto.UnauthorizedErrorResponse"}},
                    "500": {"description": "Delivery failed", "schema": {"$ref": "#/definitions/dto.InternalErrorResponse"}}
                }
            }
        },
        "/api/v1/email/confirm": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["email"],
                "summary": "Confirm and send a parked draft",
                "parameters": [
                    {
                        "description": "Draft id and confirmation code",
                        "name": "confirm",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.ConfirmDraftRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.EmailAck"}},
                    "400": {"description": "Bad code or expired draft", "schema": {"$ref": "#/definitions/dto.ValidationErrorResponse"}},
                    "401": {"description": "Not authenticated", "schema": {"$ref": "#/definitions/dto.UnauthorizedErrorResponse"}},
                    "404": {"description": "Unknown draft", "schema": {"$ref": "#/definitions/dto.NotFoundErrorResponse"}},
                    "500": {"description": "Delivery failed", "schema": {"$ref": "#/definitions/dto.InternalErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "dto.LoginResponse": {
            "type": "object",
            "properties": {
                "access_token": {"type": "string"},
                "expires_at": {"type": "string"}
            }
        },
        "dto.VoiceQueryRequest": {
            "type": "object",
            "required": ["text"],
            "properties": {
                "text": {"type": "string"},
                "speak": {"type": "boolean"},
                "voice": {"type": "string"}
            }
        },
        "dto.VoiceQueryResponse": {
            "type": "object",
            "properties": {
                "intent": {"type": "string"},
                "response": {"type": "string"},
                "draft": {"$ref": "#/definitions/dto.DraftInfo"},
                "audio": {"type": "string"},
                "audio_error": {"type": "string"}
            }
        },
        "dto.DraftInfo": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "code": {"type": "string"},
                "recipient": {"type": "string"},
                "body": {"type": "string"}
            }
        },
        "dto.SendEmailRequest": {
            "type": "object",
            "required": ["to", "body"],
            "properties": {
                "to": {"type": "string"},
                "body": {"type": "string"}
            }
        },
        "dto.ConfirmDraftRequest": {
            "type": "object",
            "required": ["draft_id", "code"],
            "properties": {
                "draft_id": {"type": "string"},
                "code": {"type": "string"}
            }
        },
        "dto.EmailAck": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "to": {"type": "string"},
                "sent_at": {"type": "string"}
            }
        },
        "dto.WineListResponse": {
            "type": "object",
            "properties": {
                "wines": {"type": "array", "items": {"$ref": "#/definitions/models.Wine"}},
                "total": {"type": "integer"}
            }
        },
        "dto.CustomerListResponse": {
            "type": "object",
            "properties": {
                "customers": {"type": "array", "items": {"$ref": "#/definitions/models.Customer"}},
                "total": {"type": "integer"}
            }
        },
        "dto.OrderSummaryResponse": {
            "type": "object",
            "properties": {
                "orders": {"type": "array", "items": {"$ref": "#/definitions/models.Order"}},
                "revenue_cents": {"type": "integer"},
                "revenue": {"type": "string"},
                "bottles": {"type": "integer"}
            }
        },
        "models.Wine": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "vintage": {"type": "integer"},
                "price_cents": {"type": "integer"},
                "stock": {"type": "integer"},
                "region": {"type": "string"},
                "description": {"type": "string"}
            }
        },
        "models.Customer": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "organization": {"type": "string"},
                "contact_name": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "last_order": {"type": "string"}
            }
        },
        "models.Order": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "customer_name": {"type": "string"},
                "wine_name": {"type": "string"},
                "quantity": {"type": "integer"},
                "date": {"type": "string"},
                "total_cents": {"type": "integer"}
            }
        },
        "dto.FieldError": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "message": {"type": "string"},
                "tag": {"type": "string"}
            }
        },
        "dto.ValidationErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "details": {"type": "string"},
                "fields": {"type": "array", "items": {"$ref": "#/definitions/dto.FieldError"}}
            }
        },
        "dto.UnauthorizedErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "details": {"type": "string"},
                "fields": {"type": "array", "items": {"$ref": "#/definitions/dto.FieldError"}}
            }
        },
        "dto.NotFoundErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "details": {"type": "string"},
                "fields": {"type": "array", "items": {"$ref": "#/definitions/dto.FieldError"}}
            }
        },
        "dto.RateLimitedErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "details": {"type": "string"},
                "fields": {"type": "array", "items": {"$ref": "#/definitions/dto.FieldError"}}
            }
        },
        "dto.InternalErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "details": {"type": "string"},
                "fields": {"type": "array", "items": {"$ref": "#/definitions/dto.FieldError"}}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Aimee Voice API",
	Description:      "Voice assistant for a wine merchant: inventory, pricing, customers, email drafting",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
