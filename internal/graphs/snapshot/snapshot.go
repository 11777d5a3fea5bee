// Package snapshot captures an HTML rendering as a PNG with headless Chrome.
package snapshot

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/psidex/graphpair/internal/correspond"
	"github.com/psidex/graphpair/internal/graphs"
)

// Snapshot defines a Renderer that opens the page written by another Renderer in
// Chrome and saves a screenshot. Chrome must be installed.
type Snapshot struct {
	source graphs.Renderer
	// Settle is how long the page gets to draw after its canvas appears.
	Settle  time.Duration
	Timeout time.Duration
	Width   int64
	Height  int64
}

var _ graphs.Renderer = Snapshot{}

// NewSnapshot screenshots the HTML file written by source.
func NewSnapshot(source graphs.Renderer) Snapshot {
	return Snapshot{
		source:  source,
		Settle:  time.Second,
		Timeout: time.Second * 30,
		Width:   1600,
		Height:  1000,
	}
}

func (s Snapshot) Render(ctx context.Context, c *correspond.Correspondence, scene graphs.Scene, filename string) error {
	dir, err := os.MkdirTemp("", "graphpair-snapshot")
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)

	base := filepath.Join(dir, "page")
	if err := s.source.Render(ctx, c, scene, base); err != nil {
		return err
	}

	target, err := fileURL(base + ".html")
	if err != nil {
		return err
	}

	scene.Logger.Debug("capturing page", "url", target, "width", s.Width, "height", s.Height)
	png, err := s.capture(ctx, target)
	if err != nil {
		return fmt.Errorf("capture %s: %w", target, err)
	}

	return os.WriteFile(filename+".png", png, 0o644)
}

func (s Snapshot) capture(ctx context.Context, target string) ([]byte, error) {
	timeoutCtx, timeoutCancel := context.WithTimeout(ctx, s.Timeout)
	defer timeoutCancel()

	ctx, cancel := chromedp.NewContext(timeoutCtx)
	defer cancel()

	var png []byte
	err := chromedp.Run(ctx,
		chromedp.EmulateViewport(s.Width, s.Height),
		chromedp.Navigate(target),
		chromedp.WaitVisible("canvas", chromedp.ByQuery),
		chromedp.Sleep(s.Settle),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			png, err = page.CaptureScreenshot().WithFormat(page.CaptureScreenshotFormatPng).Do(ctx)
			return err
		}),
	)
	return png, err
}

func fileURL(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String(), nil
}
