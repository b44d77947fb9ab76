package server

import (
	"errors"
	"fmt"
	"net"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Run поднимает HTTP-сервер на первом свободном порту начиная с port.
// Занятый порт — обычное дело в dev-окружении (предыдущий инстанс ещё держит
// сокет), поэтому пробуем port+1 и дальше, максимум maxRetries шагов.
func Run(r *gin.Engine, port, maxRetries int, log *zap.Logger) error {
	for i := 0; i <= maxRetries; i++ {
		p := port + i
		ln, err := net.Listen("tcp", fmt.Sprintf(":%d", p))
		if err != nil {
			if errors.Is(err, syscall.EADDRINUSE) && i < maxRetries {
				log.Warn("port is busy, trying next",
					zap.Int("port", p),
					zap.Int("next", p+1))
				continue
			}
			return err
		}
		log.Info("server listening", zap.Int("port", p))
		return r.RunListener(ln)
	}
	return fmt.Errorf("no free port in range %d-%d", port, port+maxRetries)
}
