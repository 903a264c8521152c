package service

import (
	"fmt"

	"github.com/emzola/libraryportal/internal/mailer"
)

// sendEmail mails a templated message in the background. Nothing is sent when
// SMTP is not configured.
func (s *service) sendEmail(recipient, templateFile string, data any) {
	if !s.config.SMTPEnabled() {
		return
	}
	s.background(func() {
		m := mailer.New(s.config.SMTP.Host, s.config.SMTP.Port, s.config.SMTP.Username, s.config.SMTP.Password, s.config.SMTP.Sender)
		err := m.Send(recipient, templateFile, data)
		if err != nil {
			s.logger.PrintError(err, map[string]string{"template": templateFile})
		}
	})
}

// background launches a background goroutine and recovers from panics inside
// the goroutine. It accepts an arbitrary function as a parameter and executes
// the function parameter inside the goroutine.
func (s *service) background(fn func()) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer func() {
			if err := recover(); err != nil {
				s.logger.PrintError(fmt.Errorf("%s", err), nil)
			}
		}()
		fn()
	}()
}
