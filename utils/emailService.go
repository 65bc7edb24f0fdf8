package utils

import (
	"fmt"
	"net/smtp"

	"github.com/Niaal-B/CareerPath/config"
)

// SendTestAssignedEmail notifies a student that a personalized test is ready
// to take.
func SendTestAssignedEmail(email, userName string, questionCount int) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password
	if from == "" {
		return nil
	}

	to := []string{email}

	subject := "Subject: Your Personalized Test is Ready - CareerPath\nMIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n\n"

	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 600px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px; box-shadow: 0 2px 8px rgba(0, 0, 0, 0.1);">
					<h2 style="color: #333333; text-align: center;">Your Test is Ready!</h2>
					<p style="font-size: 16px; color: #555555;">Dear %s,</p>
					<p style="font-size: 16px; color: #555555;">Your personalized aptitude test has been assigned. It contains <strong>%d questions</strong>.</p>
					<p style="font-size: 14px; color: #666666;">Log in to CareerPath to take the test. Your counsellor will prepare a career recommendation once you submit your answers.</p>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 30px;">CareerPath Team</p>
				</div>
			</body>
		</html>
	`, userName, questionCount)

	message := []byte(subject + "\n" + body)
	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, message)
	if err != nil {
		fmt.Println("Error sending test assigned email:", err)
		return err
	}

	fmt.Println("Test assigned email sent successfully to", email)
	return nil
}

// SendRecommendationEmail notifies a student that a career recommendation
// has been published for them.
func SendRecommendationEmail(email, userName, careerName string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password
	if from == "" {
		return nil
	}

	to := []string{email}

	subject := "Subject: Your Career Recommendation - CareerPath\nMIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n\n"

	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 600px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px; box-shadow: 0 2px 8px rgba(0, 0, 0, 0.1);">
					<h2 style="color: #333333; text-align: center;">🎯 Career Recommendation Ready</h2>
					<p style="font-size: 16px; color: #555555;">Dear %s,</p>
					<p style="font-size: 16px; color: #555555;">Based on your test answers, our counsellors recommend:</p>
					<h3 style="text-align: center; color: #4CAF50; margin: 20px 0;">%s</h3>
					<p style="font-size: 14px; color: #666666;">Log in to CareerPath to see your roadmap, suggested companies and curated learning resources.</p>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 30px;">CareerPath Team</p>
				</div>
			</body>
		</html>
	`, userName, careerName)

	message := []byte(subject + "\n" + body)
	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, message)
	if err != nil {
		fmt.Println("Error sending recommendation email:", err)
		return err
	}

	fmt.Println("Recommendation email sent successfully to", email)
	return nil
}
