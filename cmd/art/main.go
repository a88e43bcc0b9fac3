// Command art embeds secret payloads in images and extracts them again.
//
// Defaults can be placed in a .env file (ART_QUALITY, ART_BACKEND,
// ART_OUTGUESS_PATH, ART_PASSWORD); flags override the environment. The
// password is prompted for without echo when neither source provides it.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"golang.org/x/term"

	art "github.com/phon3x/art-go"
)

func main() {
	// A missing .env is fine; the environment may be set directly.
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "embed":
		err = runEmbed(os.Args[2:])
	case "extract":
		err = runExtract(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}

	if err != nil {
		fatal("%v", err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: art <command> [flags]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "commands:")
	fmt.Fprintln(os.Stderr, "  embed    -in cover.jpg -out stego.jpg (-msg text | -data file) [-password p] [-quality 75..95] [-backend auto|outguess|fallback]")
	fmt.Fprintln(os.Stderr, "  extract  -in stego.jpg [-out file] [-password p] [-backend auto|outguess|fallback]")
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func runEmbed(args []string) error {
	fs := flag.NewFlagSet("embed", flag.ExitOnError)
	in := fs.String("in", "", "cover image path")
	out := fs.String("out", "", "output stego image path")
	msg := fs.String("msg", "", "secret message text")
	data := fs.String("data", "", "secret data file")
	password := fs.String("password", "", "encryption password (prompted when empty)")
	quality := fs.Int("quality", envInt("ART_QUALITY", 90), "JPEG output quality (75-95)")
	backend := fs.String("backend", envDefault("ART_BACKEND", "auto"), "embedding backend: auto, outguess or fallback")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *in == "" || *out == "" {
		return fmt.Errorf("embed requires -in and -out")
	}

	payload, err := readPayload(*msg, *data)
	if err != nil {
		return err
	}

	session, err := newSession(*password, *backend, *quality)
	if err != nil {
		return err
	}

	result, err := session.Embed(context.Background(), *in, payload, *out)
	if err != nil {
		return err
	}

	fmt.Printf("embedded %d bytes into %s (backend: %s)\n", len(payload), *out, result.Backend)
	if result.Backend == "fallback" {
		fmt.Printf("used %d of %d carrier bits, modified %d channel values\n",
			result.BitsWritten, result.SlotsAvailable, result.ChannelsModified)
	}
	return nil
}

func runExtract(args []string) error {
	fs := flag.NewFlagSet("extract", flag.ExitOnError)
	in := fs.String("in", "", "stego image path")
	out := fs.String("out", "", "write payload to this file instead of stdout")
	password := fs.String("password", "", "encryption password (prompted when empty)")
	backend := fs.String("backend", envDefault("ART_BACKEND", "auto"), "extraction backend: auto, outguess or fallback")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *in == "" {
		return fmt.Errorf("extract requires -in")
	}

	session, err := newSession(*password, *backend, envInt("ART_QUALITY", 90))
	if err != nil {
		return err
	}

	payload, err := session.Extract(context.Background(), *in)
	if err != nil {
		return err
	}

	if *out != "" {
		if err := os.WriteFile(*out, payload, 0o600); err != nil {
			return fmt.Errorf("write payload: %w", err)
		}
		fmt.Printf("wrote %d bytes to %s\n", len(payload), *out)
		return nil
	}

	os.Stdout.Write(payload)
	if len(payload) > 0 && payload[len(payload)-1] != '\n' {
		fmt.Println()
	}
	return nil
}

func newSession(password, backend string, quality int) (*art.Session, error) {
	pw, err := resolvePassword(password)
	if err != nil {
		return nil, err
	}

	opts := []art.Option{
		art.WithBackend(art.BackendKind(backend)),
		art.WithQuality(quality),
	}
	if path := os.Getenv("ART_OUTGUESS_PATH"); path != "" {
		opts = append(opts, art.WithOutGuessPath(path))
	}
	return art.New(pw, opts...)
}

func readPayload(msg, data string) ([]byte, error) {
	switch {
	case msg != "" && data != "":
		return nil, fmt.Errorf("-msg and -data are mutually exclusive")
	case msg != "":
		return []byte(msg), nil
	case data != "":
		payload, err := os.ReadFile(data)
		if err != nil {
			return nil, fmt.Errorf("read payload file: %w", err)
		}
		return payload, nil
	default:
		return nil, fmt.Errorf("embed requires -msg or -data")
	}
}

// resolvePassword returns the flag value, the environment value, or a
// no-echo terminal prompt, in that order.
func resolvePassword(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if pw := os.Getenv("ART_PASSWORD"); pw != "" {
		return pw, nil
	}

	fmt.Fprint(os.Stderr, "password: ")
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(raw), nil
}

func envDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
