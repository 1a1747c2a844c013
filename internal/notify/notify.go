package notify

import (
	"fmt"
	"log"
	"os/exec"
)

type Notifier interface {
	Copied(value string)
	Error(msg string)
	Notify(title, message string)
}

// New returns the notifier for a notifications.type config value.
func New(kind string) Notifier {
	switch kind {
	case "desktop":
		return Desktop{}
	case "log":
		return Log{}
	default:
		return Nop{}
	}
}

type Desktop struct{}

func (d Desktop) Copied(value string) {
	d.Notify("Hyprhue", fmt.Sprintf("Copied %s to clipboard", value))
}

func (Desktop) Error(msg string) {
	cmd := exec.Command("notify-send", "-a", "Hyprhue", "-u", "critical", "Hyprhue Error", msg)
	if err := cmd.Run(); err != nil {
		log.Printf("Failed to send error notification: %v", err)
	}
}

func (Desktop) Notify(title, message string) {
	cmd := exec.Command("notify-send", "-a", "Hyprhue", "-t", "2000", title, message)
	if err := cmd.Run(); err != nil {
		log.Printf("Failed to send notification: %v", err)
	}
}

// Log writes notifications to the standard logger.
type Log struct{}

func (Log) Copied(value string) {
	log.Printf("Hyprhue: Copied %s to clipboard", value)
}

func (Log) Error(msg string) {
	log.Printf("Hyprhue Error: %s", msg)
}

func (Log) Notify(title, message string) {
	log.Printf("%s: %s", title, message)
}

// Nop is a Notifier that does absolutely nothing.
// Useful in unit tests or headless builds.
type Nop struct{}

func (Nop) Copied(value string)          {}
func (Nop) Error(msg string)             {}
func (Nop) Notify(title, message string) {}
