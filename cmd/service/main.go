package main

import (
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/aimeevoice/aimee-web-app/config"
	_ "github.com/aimeevoice/aimee-web-app/docs"
	"github.com/aimeevoice/aimee-web-app/internal/auth"
	"github.com/aimeevoice/aimee-web-app/internal/cache"
	"github.com/aimeevoice/aimee-web-app/internal/catalog"
	"github.com/aimeevoice/aimee-web-app/internal/drafts"
	"github.com/aimeevoice/aimee-web-app/internal/handlers"
	"github.com/aimeevoice/aimee-web-app/internal/interpreter"
	"github.com/aimeevoice/aimee-web-app/internal/producer"
	"github.com/aimeevoice/aimee-web-app/internal/router"
	"github.com/aimeevoice/aimee-web-app/internal/sender"
	"github.com/aimeevoice/aimee-web-app/internal/server"
	"github.com/aimeevoice/aimee-web-app/internal/speech"
	"github.com/aimeevoice/aimee-web-app/pkg/logger"
)

// @Title Aimee Voice API
// @Version 1.0
// @Description Voice assistant for a wine merchant: inventory, pricing, customers, email drafting
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	_ = godotenv.Load()
	isDev := os.Getenv("ENV") == "development"
	if err := logger.Init(isDev); err != nil {
		panic(err)
	}

	defer logger.Sync()

	log := logger.L()

	cfg := config.Load(log)

	store := catalog.SeedStore()
	interp := interpreter.New(store)

	var synth speech.Synthesizer = speech.Disabled{}
	if cfg.Speech.APIKey != "" {
		synth = speech.NewElevenLabs(cfg.Speech.BaseURL, cfg.Speech.APIKey, cfg.Speech.FallbackModel, log)
	} else {
		log.Warn("ELEVENLABS_API_KEY not set, responses will be text-only")
	}
	profile := speech.VoiceProfile{
		VoiceID:      cfg.Speech.VoiceID,
		ModelID:      cfg.Speech.ModelID,
		Stability:    cfg.Speech.Stability,
		Similarity:   cfg.Speech.Similarity,
		Style:        cfg.Speech.Style,
		SpeakerBoost: cfg.Speech.SpeakerBoost,
	}

	var blacklist auth.Blacklist = auth.NewMemoryBlacklist()
	var rl handlers.RateLimitStore
	if cfg.Redis.Enabled {
		rdb, err := cache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, log)
		if err != nil {
			log.Fatal("redis connection failed", zap.Error(err))
		}
		defer rdb.Close()
		blacklist = rdb
		rl = rdb
	}

	tokens := auth.NewTokenProvider(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Audience)
	admin, err := auth.NewStaffUser(cfg.Admin.Email, cfg.Admin.Password, "ROLE_ADMIN")
	if err != nil {
		log.Fatal("staff directory seeding failed", zap.Error(err))
	}
	authSvc := auth.NewService([]auth.StaffUser{admin}, tokens, blacklist, cfg.JWT.AccessExp, log)

	registry := drafts.New(cfg.DraftTTL)

	var mail sender.MessageSender = sender.NewSimulatedSender(cfg.SimSendDelay, log)
	if cfg.SMTP.Enabled {
		mail = sender.NewSMTPSender(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password, cfg.SMTP.From)
	}

	var events handlers.EmailEvents
	if len(cfg.Kafka.Brokers) > 0 {
		prod := producer.NewEmailProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer prod.Close()
		events = prod
	}

	h := router.Handlers{
		Auth:    handlers.NewAuthHandler(authSvc, rl, log),
		Voice:   handlers.NewVoiceHandler(interp, synth, profile, registry, log),
		Catalog: handlers.NewCatalogHandler(store),
		Email:   handlers.NewEmailHandler(mail, registry, events, log),
	}

	r := router.Router(h, authSvc, cfg.CORSOrigins, log)

	if err := server.Run(r, cfg.Port, cfg.MaxPortRetries, log); err != nil {
		log.Fatal("failed to run http server", zap.Error(err))
	}
}
