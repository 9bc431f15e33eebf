package notification

import (
	"html/template"
	"strings"

	"github.com/velvetnails/salon-scheduler/internal/models"
)

var confirmationTmpl = template.Must(template.New("appointment_confirmation").Parse(`<!DOCTYPE html>
<html>
  <body style="font-family: sans-serif; color: #333;">
    <h2>Your appointment is booked!</h2>
    <p>Hi {{.Name}},</p>
    <p>
      We have reserved <strong>{{.Date}}</strong> for:
      <strong>{{.Services}}</strong>.
    </p>
    <p>
      You can review or manage your bookings at
      <a href="{{.Link}}">{{.Link}}</a>.
    </p>
    <p>See you soon!</p>
  </body>
</html>
`))

type confirmationData struct {
	Name     string
	Date     string
	Services string
	Link     string
}

// RenderConfirmation builds the booking-confirmation email body.
func RenderConfirmation(ap *models.Appointment, link string) (string, error) {
	names := make([]string, 0, len(ap.Services))
	for _, s := range ap.Services {
		names = append(names, s.Name)
	}

	var b strings.Builder
	err := confirmationTmpl.Execute(&b, confirmationData{
		Name:     ap.Client.Name,
		Date:     ap.Date.Format("02-01-2006 15:04"),
		Services: strings.Join(names, ", "),
		Link:     link,
	})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}
