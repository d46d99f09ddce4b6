package mailer_test

import (
	"context"
	"testing"

	"github.com/gvbank/teller/infra/mailer"
	"github.com/gvbank/teller/pkg/config"
	"github.com/gvbank/teller/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestDeliverFailures(t *testing.T) {
	t.Parallel()

	cfg := config.SMTP{
		Host:     "smtp.example.com",
		Port:     587,
		Username: "teller@example.com",
		Password: "app-password",
		From:     "teller@example.com",
	}
	otpCfg := config.OTP{Subject: "GV Bank - OTP Verification", BodyPrefix: "Your GV Bank OTP is: "}

	t.Run("bad sender address", func(t *testing.T) {
		m := mailer.New(config.SMTP{Host: "smtp.example.com", Port: 587, From: "not-an-address"}, otpCfg)
		err := m.Deliver(context.Background(), "user1@example.com", "123456")
		assert.ErrorIs(t, err, domain.ErrDeliveryFailed)
	})

	t.Run("bad recipient address", func(t *testing.T) {
		m := mailer.New(cfg, otpCfg)
		err := m.Deliver(context.Background(), "not-an-address", "123456")
		assert.ErrorIs(t, err, domain.ErrDeliveryFailed)
	})

	t.Run("unreachable relay", func(t *testing.T) {
		unreachable := cfg
		unreachable.Host = "127.0.0.1"
		unreachable.Port = 1 // nothing listens here
		m := mailer.New(unreachable, otpCfg)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := m.Deliver(ctx, "user1@example.com", "123456")
		assert.ErrorIs(t, err, domain.ErrDeliveryFailed)
	})
}
