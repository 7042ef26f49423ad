package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/pampered-pooch/site-api/internal/domain"
	"github.com/pampered-pooch/site-api/internal/workflow"
)

// A terminal rendition of the site's contact form: collects the message,
// walks the email-verification step, and reports delivery.
func main() {
	base := flag.String("api", "http://localhost:3001", "site API base URL")
	flag.Parse()

	client := workflow.NewClient(*base)
	ctx := context.Background()

	if err := client.Health(ctx); err != nil {
		log.Fatalf("API not reachable at %s: %v", *base, err)
	}

	info, _ := client.FetchSiteConfig(ctx)
	fmt.Printf("The Pampered Pooch — %s — %s\n\n", info.Address, info.PhoneDisplay)

	m := workflow.NewMachine(client)
	in := bufio.NewReader(os.Stdin)

	for {
		switch m.State() {
		case workflow.StateForm:
			runForm(ctx, m, in)
		case workflow.StateVerify:
			runVerify(ctx, m, in)
		case workflow.StateSuccess:
			runSuccess(m)
		}
	}
}

func runForm(ctx context.Context, m *workflow.Machine, in *bufio.Reader) {
	draft := m.Form()
	m.SetForm(domain.ContactMessage{
		Name:    promptDefault(in, "Name", draft.Name),
		Email:   promptDefault(in, "Email", draft.Email),
		Phone:   promptDefault(in, "Phone", draft.Phone),
		Message: promptDefault(in, "Message", draft.Message),
	})

	fmt.Println("Sending code...")
	m.Submit(ctx)

	if msg := m.ErrorMessage(); msg != "" {
		fmt.Printf("! %s\n\n", msg)
	}
}

func runVerify(ctx context.Context, m *workflow.Machine, in *bufio.Reader) {
	// One-second tick while the verify (and then success) step is live;
	// stopped on every path back to the plain form.
	stop := startTicker(m)
	defer stop()

	fmt.Printf("\nA 6-digit code was sent to %s.\n", m.Form().Email)
	fmt.Println("Enter the code, or: r = resend, c = cancel")

	for m.State() == workflow.StateVerify {
		fmt.Printf("[expires %s | resend %s] code> ",
			workflow.FormatCountdown(m.TimeLeft()),
			workflow.FormatCountdown(m.ResendCooldown()))

		line, err := in.ReadString('\n')
		if err != nil {
			fmt.Println()
			m.Cancel()
			return
		}

		switch strings.TrimSpace(line) {
		case "c":
			m.Cancel()
		case "r":
			m.Resend(ctx)
			if msg := m.ErrorMessage(); msg != "" {
				fmt.Printf("! %s\n", msg)
			}
		default:
			m.Paste(strings.TrimSpace(line))
			if m.Digits().Complete() {
				fmt.Println("Verifying...")
				m.VerifyAndSend(ctx)
			}
			if msg := m.CodeError(); msg != "" {
				fmt.Printf("! %s\n", msg)
			}
		}
	}
}

func runSuccess(m *workflow.Machine) {
	stop := startTicker(m)
	defer stop()

	fmt.Println("\nMessage Sent!")
	for m.State() == workflow.StateSuccess {
		time.Sleep(200 * time.Millisecond)
	}
	fmt.Println()
}

// startTicker drives Machine.Tick once per second until the returned stop
// function runs.
func startTicker(m *workflow.Machine) (stop func()) {
	done := make(chan struct{})
	go func() {
		t := time.NewTicker(time.Second)
		defer t.Stop()
		for {
			select {
			case <-t.C:
				m.Tick()
			case <-done:
				return
			}
		}
	}()
	return func() { close(done) }
}

func promptDefault(in *bufio.Reader, label, current string) string {
	if current != "" {
		fmt.Printf("%s [%s]: ", label, current)
	} else {
		fmt.Printf("%s: ", label)
	}
	line, _ := in.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return current
	}
	return line
}
