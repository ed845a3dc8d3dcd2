package services

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// SendEmailVerificationCode mails the OTP to the address on file.
func SendEmailVerificationCode(email, code string) error {
	smtpServer := os.Getenv("SMTP_SERVER")
	smtpPort, portErr := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if portErr != nil {
		smtpPort = 587
	}
	smtpEmail := os.Getenv("SMTP_AUTH_MAIL")
	smtpPassword := os.Getenv("SMTP_AUTH_PASSWORD")

	message := gomail.NewMessage()
	message.SetHeader("From", smtpEmail)
	message.SetHeader("To", email)
	message.SetHeader("Subject", "Verify your email address")

	bodyString := fmt.Sprintf("Your verification code is:\n%s", code)
	message.SetBody("text", bodyString)

	client := gomail.NewDialer(smtpServer, smtpPort, smtpEmail, smtpPassword)

	if err := client.DialAndSend(message); err != nil {
		log.Printf("failed to send verification mail: %s", err)
		return err
	}

	return nil
}

// SendPhoneVerificationCode hands the OTP to the SMS collaborator. There is
// no gateway wired in this deployment, so the code is only logged.
func SendPhoneVerificationCode(phoneNumber, code string) error {
	log.Printf("SMS verification code for %s: %s", phoneNumber, code)
	return nil
}
