// Command gallery prints one page of an album served by the site API.
//
//	gallery -prefix 2024-summit -page 2
//
// Images whose URL could not be signed are skipped. With -open N the Nth
// photo of the page is shown and stdin drives the viewer one command per
// line: n or right steps forward, p or left steps back, q or esc closes.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/rs/zerolog"

	"gyccsite/internal/gallery"
)

type options struct {
	APIURL   string        `env:"GALLERY_API_URL" envDefault:"http://localhost:8080"`
	PageSize int           `env:"GALLERY_PAGE_SIZE" envDefault:"24"`
	Timeout  time.Duration `env:"GALLERY_TIMEOUT" envDefault:"30s"`
	Prefix   string
	Page     int
	Open     int
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Error().Err(err).Msg("gallery failed")
		os.Exit(1)
	}
}

func parseOptions(args []string) (options, error) {
	var opts options
	if err := env.Parse(&opts); err != nil {
		return opts, fmt.Errorf("read environment: %w", err)
	}

	fs := flag.NewFlagSet("gallery", flag.ContinueOnError)
	fs.StringVar(&opts.APIURL, "api", opts.APIURL, "base URL of the site API")
	fs.StringVar(&opts.Prefix, "prefix", "", "album prefix (required)")
	fs.IntVar(&opts.Page, "page", 1, "page number, clamped to the album")
	fs.IntVar(&opts.PageSize, "size", opts.PageSize, "photos per page")
	fs.IntVar(&opts.Open, "open", 0, "open the viewer on the Nth photo of the page")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.Prefix == "" {
		return opts, fmt.Errorf("-prefix is required")
	}
	return opts, nil
}

func run(ctx context.Context, args []string, in io.Reader, out io.Writer) error {
	opts, err := parseOptions(args)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	client := gallery.NewClient(opts.APIURL)
	loader := gallery.NewLoader(client.Fetcher(opts.Prefix))
	photos, err := loader.Load(ctx)
	if err != nil {
		return fmt.Errorf("load %q: %w", opts.Prefix, err)
	}
	if len(photos) == 0 {
		_, err := fmt.Fprintf(out, "no photos found in %s\n", opts.Prefix)
		return err
	}

	page := gallery.Paginate(photos, opts.Page, opts.PageSize)
	if _, err := fmt.Fprintf(out, "%s: page %d of %d (%d photos)\n", opts.Prefix, page.Number, page.Total, len(photos)); err != nil {
		return err
	}
	visible := gallery.Visible(page.Items)
	for _, p := range visible {
		if _, err := fmt.Fprintf(out, "%s\t%s\n", p.FilePath, *p.URL); err != nil {
			return err
		}
	}
	if opts.Open > 0 {
		return view(visible, opts.Open-1, in, out)
	}
	return nil
}

var viewerKeys = map[string]gallery.Key{
	"n":     gallery.KeyArrowRight,
	"right": gallery.KeyArrowRight,
	"p":     gallery.KeyArrowLeft,
	"left":  gallery.KeyArrowLeft,
	"q":     gallery.KeyEscape,
	"esc":   gallery.KeyEscape,
}

// view opens a viewer on photos[index] and applies one key per input line
// until the viewer closes or input ends.
func view(photos []gallery.Photo, index int, in io.Reader, out io.Writer) error {
	v := gallery.NewViewer[gallery.Photo](nil)
	v.Open(photos, index)
	defer v.Close()

	show := func() error {
		p, ok := v.Current()
		if !ok {
			return nil
		}
		_, err := fmt.Fprintf(out, "[%d/%d] %s\t%s\n", v.Index()+1, len(photos), p.FilePath, *p.URL)
		return err
	}
	if err := show(); err != nil {
		return err
	}

	sc := bufio.NewScanner(in)
	for v.IsOpen() && sc.Scan() {
		k, ok := viewerKeys[strings.ToLower(strings.TrimSpace(sc.Text()))]
		if !ok || !v.HandleKey(k) {
			continue
		}
		if err := show(); err != nil {
			return err
		}
	}
	return sc.Err()
}
