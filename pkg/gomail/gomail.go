package gomail

import (
	"errors"
	"strconv"

	"sitelabour/internal/config"
	"sitelabour/pkg/util/general"

	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

// SendMail delivers the html body with a plain-text alternative part so the
// password emails stay readable in text-only clients.
func SendMail(recipient, subject, bodyHtml string) error {
	if bodyHtml == "" {
		return errors.New("error parsing body html")
	}

	mailer := gomail.NewMessage()
	mailer.SetHeader("From", config.Get().Gomail.AuthEmail, config.Get().Gomail.SenderName)
	mailer.SetHeader("To", recipient)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/plain", general.ParseTemplateEmailToPlainText(bodyHtml))
	mailer.AddAlternative("text/html", bodyHtml)

	portMail, _ := strconv.Atoi(config.Get().Gomail.SmtpPort)
	dialer := gomail.NewDialer(
		config.Get().Gomail.SmtpHost,
		portMail,
		config.Get().Gomail.AuthEmail,
		config.Get().Gomail.AuthPassword,
	)
	dialer.SSL = false

	err := dialer.DialAndSend(mailer)
	if err != nil {
		return err
	}

	logrus.Info("Mail sent!")
	return nil
}
