package mailer

import (
	"goldentouch-booking/pkg/utils"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

var (
	emailsSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "goldentouch_emails_sent_total",
		Help: "Emails handed to the SMTP transport successfully.",
	})
	emailsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "goldentouch_emails_failed_total",
		Help: "Emails the SMTP transport failed to deliver.",
	})
)

// Mailer sends HTML email through SMTP with STARTTLS. When credentials are
// missing it stays disabled and every send is skipped without error.
type Mailer struct {
	dialer   *gomail.Dialer
	from     string
	fromName string
	enabled  bool
	log      *zap.Logger
}

func New(cfg utils.EmailConfig, log *zap.Logger) *Mailer {
	m := &Mailer{
		from:     cfg.User,
		fromName: cfg.FromName,
		enabled:  cfg.User != "" && cfg.Password != "",
		log:      log.With(zap.String("component", "mailer")),
	}

	if m.enabled {
		m.dialer = gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
		m.log.Info("SMTP email transport initialized", zap.String("user", cfg.User))
	} else {
		m.log.Warn("email transport disabled: SMTP credentials not configured")
	}

	return m
}

func (m *Mailer) Enabled() bool {
	return m.enabled
}

// Send delivers one message. Single attempt, boolean outcome; a disabled
// transport reports false without attempting delivery.
func (m *Mailer) Send(to, subject, htmlBody string) bool {
	if !m.enabled {
		m.log.Info("email sending skipped (not configured)",
			zap.String("to", to),
			zap.String("subject", subject),
		)
		return false
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", msg.FormatAddress(m.from, m.fromName))
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		emailsFailed.Inc()
		m.log.Error("failed to send email",
			zap.Error(err),
			zap.String("to", to),
			zap.String("subject", subject),
		)
		return false
	}

	emailsSent.Inc()
	m.log.Info("email sent", zap.String("to", to), zap.String("subject", subject))
	return true
}
