package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/gvbank/teller/pkg/money"
	"golang.org/x/term"
)

// terminalPrompter implements service.Prompter and service.OTPPrompter on
// stdin. Every prompt accepts an empty line as cancellation; invalid input
// re-prompts until the input parses or the user cancels.
type terminalPrompter struct {
	in *bufio.Reader
}

func newTerminalPrompter() *terminalPrompter {
	return &terminalPrompter{in: bufio.NewReader(os.Stdin)}
}

// line prints the label and reads one trimmed line. ok=false on EOF or an
// empty answer.
func (p *terminalPrompter) line(label string) (string, bool) {
	fmt.Printf("%s (empty to cancel): ", label)
	text, err := p.in.ReadString('\n')
	if err != nil {
		return "", false
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", false
	}
	return text, true
}

// secret reads one line without echo. Used for PINs and OTP responses.
func (p *terminalPrompter) secret(label string) (string, bool) {
	fmt.Printf("%s (empty to cancel): ", label)
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		// Not a terminal (tests, pipes): fall back to a plain line.
		text, readErr := p.in.ReadString('\n')
		if readErr != nil {
			return "", false
		}
		raw = []byte(strings.TrimSpace(text))
	}
	text := strings.TrimSpace(string(raw))
	if text == "" {
		return "", false
	}
	return text, true
}

// Amount prompts until it reads a parseable rupee amount.
func (p *terminalPrompter) Amount(label string) (money.Money, bool) {
	for {
		text, ok := p.line(label)
		if !ok {
			return money.Zero(), false
		}
		amount, err := money.Parse(text)
		if err != nil {
			errorDialog("Enter a valid amount, e.g. 500 or 499.99")
			continue
		}
		return amount, true
	}
}

// AccountNumber prompts until it reads a positive integer.
func (p *terminalPrompter) AccountNumber(label string) (int64, bool) {
	for {
		text, ok := p.line(label)
		if !ok {
			return 0, false
		}
		number, err := strconv.ParseInt(text, 10, 64)
		if err != nil || number < 1 {
			errorDialog("Enter a valid account number")
			continue
		}
		return number, true
	}
}

// PIN prompts, without echo, until it reads a 4-digit number.
func (p *terminalPrompter) PIN(label string) (int, bool) {
	for {
		text, ok := p.secret(label)
		if !ok {
			return 0, false
		}
		pin, err := strconv.Atoi(text)
		if err != nil || pin < 1000 || pin > 9999 {
			errorDialog("Enter a 4-digit PIN")
			continue
		}
		return pin, true
	}
}

// PromptOTP reads the emailed one-time code. A single attempt; no format
// check beyond trimming, since the comparison is exact string equality.
func (p *terminalPrompter) PromptOTP() (string, bool) {
	return p.secret("Enter OTP sent to your email")
}

// ImagePath prompts for the captured-image file, standing in for the
// camera loop, and returns its contents.
func (p *terminalPrompter) ImagePath(label string) ([]byte, bool) {
	for {
		path, ok := p.line(label)
		if !ok {
			return nil, false
		}
		image, err := os.ReadFile(path)
		if err != nil {
			errorDialog(fmt.Sprintf("Cannot read image: %v", err))
			continue
		}
		return image, true
	}
}

var (
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	infoColor    = color.New(color.FgCyan)
	titleColor   = color.New(color.FgYellow, color.Bold)
)

func successDialog(format string, args ...any) {
	successColor.Printf("✅ "+format+"\n", args...) //nolint:errcheck
}

func errorDialog(format string, args ...any) {
	errorColor.Printf("❌ "+format+"\n", args...) //nolint:errcheck
}

func infoDialog(format string, args ...any) {
	infoColor.Printf("ℹ️  "+format+"\n", args...) //nolint:errcheck
}

func title(text string) {
	titleColor.Println("\n🏦 " + text) //nolint:errcheck
}
