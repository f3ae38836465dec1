// Command breachcheck asks for a name, phone number and password and reports
// whether the password appears in known breaches.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Goofygiraffe06/breachcheck/internal/breach"
	"github.com/Goofygiraffe06/breachcheck/internal/checker"
	"github.com/Goofygiraffe06/breachcheck/internal/config"
	"github.com/Goofygiraffe06/breachcheck/internal/logging"
	"github.com/Goofygiraffe06/breachcheck/internal/models"
	"github.com/Goofygiraffe06/breachcheck/internal/render"
	"golang.org/x/term"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

// prompter reads answers from stdin, hiding the password when stdin is a terminal.
type prompter struct {
	in  *bufio.Reader
	fd  int
	tty bool
	out io.Writer
}

func newPrompter(stdin io.Reader, stdout io.Writer) *prompter {
	p := &prompter{in: bufio.NewReader(stdin), out: stdout}
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		p.fd = int(f.Fd())
		p.tty = true
	}
	return p
}

func (p *prompter) line(label string) (string, error) {
	fmt.Fprint(p.out, label)
	s, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(s, "\r\n"), nil
}

func (p *prompter) password(label string) (string, error) {
	if !p.tty {
		return p.line(label)
	}
	fmt.Fprint(p.out, label)
	b, err := term.ReadPassword(p.fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Run is the testable entrypoint. It returns the process exit code.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("breachcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	name := fs.String("name", "", "Name to submit with the check")
	phone := fs.String("phone", "", "Phone number that receives the SMS report")
	endpoint := fs.String("endpoint", "", "Breach check endpoint (defaults to CHECK_ENDPOINT)")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	if *endpoint == "" {
		*endpoint = config.CheckEndpoint()
	}

	p := newPrompter(stdin, stdout)
	var err error
	if *name == "" {
		if *name, err = p.line("Name: "); err != nil {
			fmt.Fprintf(stderr, "reading name: %v\n", err)
			return exitFailed
		}
	}
	if *phone == "" {
		if *phone, err = p.line("Phone: "); err != nil {
			fmt.Fprintf(stderr, "reading phone: %v\n", err)
			return exitFailed
		}
	}
	password, err := p.password("Password: ")
	if err != nil {
		fmt.Fprintf(stderr, "reading password: %v\n", err)
		return exitFailed
	}

	client := breach.NewClient(*endpoint, breach.WithTimeout(config.CheckTimeout()))
	h := checker.New(client, render.NewTerminal(stdout))

	err = h.CheckPassword(ctx, models.FormInputs{Name: *name, Phone: *phone, Password: password})
	if err != nil {
		logging.DebugLog("Check finished with error: %v", err)
		return exitFailed
	}
	return exitOK
}

func main() {
	f, err := logging.InitLogger(config.LogFile(), config.IsProduction())
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	logging.Sync()
	f.Close()
	os.Exit(code)
}
