// Package pdfexport renders a validated offer pair into a two-column
// comparison sheet PDF via headless Chromium. It reads only the
// presenter-facing offer fields and never re-derives a figure.
package pdfexport

import (
	"context"
	"encoding/base64"
	"fmt"
	"html"
	"math"
	"os"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/dustin/go-humanize"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"offersheet/internal/offers"
)

const (
	FormatBranded = "branded"
	FormatPro     = "pro"
)

type ChromiumRenderer struct {
	chromePath string
}

func NewChromiumRenderer() *ChromiumRenderer {
	return &ChromiumRenderer{chromePath: detectChromePath()}
}

func (r *ChromiumRenderer) Render(ctx context.Context, pair offers.OfferPair, format string) ([]byte, error) {
	htmlDoc, err := buildHTML(pair, format)
	if err != nil {
		return nil, err
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	opts := []chromedp.ExecAllocatorOption{
		chromedp.NoSandbox,
		chromedp.DisableGPU,
		chromedp.Flag("disable-dev-shm-usage", true),
	}
	if r.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(r.chromePath))
	}
	allocCtx, allocCancel := chromedp.NewExecAllocator(timeoutCtx, append(chromedp.DefaultExecAllocatorOptions[:], opts...)...)
	defer allocCancel()

	taskCtx, taskCancel := chromedp.NewContext(allocCtx)
	defer taskCancel()

	var pdf []byte
	dataURL := "data:text/html;base64," + base64.StdEncoding.EncodeToString([]byte(htmlDoc))
	if err := chromedp.Run(taskCtx,
		chromedp.Navigate(dataURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			footer := `<div style="width:100%;text-align:center;font-size:9px;color:#666;">` +
				`Page <span class="pageNumber"></span> of <span class="totalPages"></span></div>`
			out, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithDisplayHeaderFooter(true).
				WithHeaderTemplate(`<div></div>`).
				WithFooterTemplate(footer).
				WithPaperWidth(8.5).
				WithPaperHeight(11).
				WithMarginTop(0.5).
				WithMarginBottom(0.6).
				WithMarginLeft(0.5).
				WithMarginRight(0.5).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = out
			return nil
		}),
	); err != nil {
		return nil, err
	}
	return pdf, nil
}

// buildHTML lays out the comparison sheet. The branded format carries the
// green accent; pro is neutral for co-branded or white-label use.
func buildHTML(pair offers.OfferPair, format string) (string, error) {
	accent := "#2e7d32"
	headingColor := "#2e7d32"
	if format == FormatPro {
		accent = "#1a1a1a"
		headingColor = "#333333"
	}

	sectionA, err := buildOfferSection("Option A", pair.OfferA)
	if err != nil {
		return "", err
	}
	sectionB, err := buildOfferSection("Option B", pair.OfferB)
	if err != nil {
		return "", err
	}

	style := fmt.Sprintf(`
html,body,*{-webkit-print-color-adjust:exact !important;print-color-adjust:exact !important;}
body{font-family:Helvetica,Arial,sans-serif;color:#1a1a1a;background:#fff;margin:0;padding:0.4rem;}
h1{font-size:24px;color:%s;text-align:center;margin:0 0 30px;}
h2{font-size:16px;color:%s;margin:0 0 12px;}
h3{font-size:12px;margin:14px 0 6px;}
table.offer{width:100%%;border-collapse:collapse;font-size:10px;}
table.offer td{border:0.5px solid #808080;padding:8px;vertical-align:top;text-align:left;}
table.offer td.label{background:#f0f0f0;font-weight:bold;width:30%%;}
ul.benefits{font-size:10px;margin:4px 0 0;padding-left:18px;}
ul.benefits li{margin-bottom:3px;}
.offer-block{margin-bottom:28px;}
.offer-block .md p{margin:0;}
@media print{ @page{size:letter;margin:12mm;} }
`, accent, headingColor)

	return "<!doctype html><html><head><meta charset='utf-8'><title>Property Offer Comparison</title>" +
		"<style>" + style + "</style></head><body>" +
		"<h1>Property Offer Comparison</h1>" +
		sectionA + sectionB +
		"</body></html>", nil
}

func buildOfferSection(label string, offer offers.Offer) (string, error) {
	structureHTML, err := markdownToHTML(offer.PaymentStructure)
	if err != nil {
		return "", err
	}

	var benefits strings.Builder
	for _, benefit := range offer.SellerBenefits {
		item, err := markdownToHTML(benefit)
		if err != nil {
			return "", err
		}
		benefits.WriteString("<li><div class='md'>" + item + "</div></li>")
	}

	var b strings.Builder
	b.WriteString("<div class='offer-block'>")
	fmt.Fprintf(&b, "<h2>%s: %s</h2>", html.EscapeString(label), html.EscapeString(offer.Headline))
	b.WriteString("<table class='offer'>")
	fmt.Fprintf(&b, "<tr><td class='label'>Purchase Price:</td><td>%s</td></tr>", usd(offer.PurchasePrice))
	fmt.Fprintf(&b, "<tr><td class='label'>Cash at Closing:</td><td>%s</td></tr>", usd(offer.CashAtClosing))
	fmt.Fprintf(&b, "<tr><td class='label'>Payment Structure:</td><td><div class='md'>%s</div></td></tr>", structureHTML)
	fmt.Fprintf(&b, "<tr><td class='label'>Closing Timeline:</td><td>%d days</td></tr>", offer.TimelineDays)
	b.WriteString("</table>")
	b.WriteString("<h3>Why This Works:</h3>")
	b.WriteString("<ul class='benefits'>" + benefits.String() + "</ul>")
	b.WriteString("</div>")
	return b.String(), nil
}

// markdownToHTML converts a model-authored text field. Drafts routinely
// carry markdown emphasis even in single-line fields.
func markdownToHTML(text string) (string, error) {
	var out strings.Builder
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := md.Convert([]byte(text), &out); err != nil {
		return "", fmt.Errorf("markdown convert: %w", err)
	}
	return out.String(), nil
}

func usd(v float64) string {
	r := int64(math.Round(v))
	if r < 0 {
		return "-$" + humanize.Comma(-r)
	}
	return "$" + humanize.Comma(r)
}

func detectChromePath() string {
	candidates := []string{
		"/usr/bin/chromium-browser",
		"/usr/bin/chromium",
		"/usr/bin/google-chrome",
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
