package mailer

import (
	"log"

	"gopkg.in/gomail.v2"
)

// Mailer mengirim notifikasi email ke inbox HR saat ada pesan baru
// dari form Kontak HR. Kalau SMTP_HOST kosong, notifikasi dilewati.
type Mailer struct {
	host string
	port int
	user string
	pass string
	from string
	to   string
}

func New(host string, port int, user, pass, from, to string) *Mailer {
	return &Mailer{host: host, port: port, user: user, pass: pass, from: from, to: to}
}

func (m *Mailer) Enabled() bool {
	return m.host != "" && m.to != ""
}

func (m *Mailer) SendKontakNotification(nama, email, subjek, pesan string) {
	if !m.Enabled() {
		return
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.to)
	msg.SetHeader("Reply-To", email)
	msg.SetHeader("Subject", "[Kontak HR] "+subjek)
	msg.SetBody("text/plain", "Pesan baru dari "+nama+" <"+email+">:\n\n"+pesan)

	d := gomail.NewDialer(m.host, m.port, m.user, m.pass)
	if err := d.DialAndSend(msg); err != nil {
		// Gagal kirim email tidak boleh menggagalkan submit pesan
		log.Println("Gagal mengirim notifikasi kontak HR:", err)
	}
}
