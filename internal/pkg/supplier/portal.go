// Package supplier reads purchase orders from a supplier's web portal.
package supplier

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/brown009872/payroll-app/internal/domain/inventory"
	"github.com/brown009872/payroll-app/internal/pkg/utils"
	"golang.org/x/sync/errgroup"
)

var ErrUnexpectedStatus = errors.New("supplier portal returned an unexpected status")

// portalDateLayout is the date format shown on the order history page.
const portalDateLayout = "02/01/2006"

type Config struct {
	Name       string
	HistoryURL string
	// Cookie is sent as is, for portals behind a login session.
	Cookie  string
	Timeout time.Duration
	// DetailConcurrency bounds the number of order detail pages fetched at once.
	DetailConcurrency int
}

// Portal parses the order history table of a supplier portal and the
// product lines of each order's detail page.
type Portal struct {
	cfg    Config
	client *http.Client
	logger *slog.Logger
}

var _ inventory.Source = (*Portal)(nil)

func NewPortal(cfg Config, client *http.Client, logger *slog.Logger) *Portal {
	if cfg.Name == "" {
		cfg.Name = inventory.DefaultSupplier
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.DetailConcurrency <= 0 {
		cfg.DetailConcurrency = 4
	}
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Portal{cfg: cfg, client: client, logger: logger}
}

func (p *Portal) Name() string {
	return p.cfg.Name
}

// FetchOrders loads the history page and then every linked detail page.
func (p *Portal) FetchOrders(ctx context.Context) ([]inventory.Order, error) {
	if p.cfg.HistoryURL == "" {
		return nil, inventory.ErrOrderSourceDisabled
	}

	doc, err := p.get(ctx, p.cfg.HistoryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to load order history: %w", err)
	}

	orders, links := ParseHistory(doc, p.cfg.Name)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.DetailConcurrency)
	for i := range orders {
		link := links[i]
		if link == "" {
			continue
		}
		detailURL, err := resolve(p.cfg.HistoryURL, link)
		if err != nil {
			p.logger.Warn("Skipping order detail link", "order_id", orders[i].OrderID, "link", link, "error", err)
			continue
		}
		order := &orders[i]
		g.Go(func() error {
			detail, err := p.get(gctx, detailURL)
			if err != nil {
				return fmt.Errorf("failed to load order %s: %w", order.OrderID, err)
			}
			order.Products = ParseProducts(detail)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i := range orders {
		orders[i].Normalize()
	}
	return orders, nil
}

func (p *Portal) get(ctx context.Context, target string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/html")
	if p.cfg.Cookie != "" {
		req.Header.Set("Cookie", p.cfg.Cookie)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}
	return goquery.NewDocumentFromReader(resp.Body)
}

// ParseHistory reads one order per history table row. The row's first link,
// if any, is returned alongside as the order's detail page.
//
// Columns are order number, date, status and total.
func ParseHistory(doc *goquery.Document, supplier string) ([]inventory.Order, []string) {
	var (
		orders []inventory.Order
		links  []string
	)
	doc.Find("table tbody tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 4 {
			return
		}

		id := strings.TrimPrefix(cellText(cells.Eq(0)), "#")
		if v, ok := row.Attr("data-order"); ok && strings.TrimSpace(v) != "" {
			id = strings.TrimPrefix(strings.TrimSpace(v), "#")
		}
		if id == "" {
			return
		}

		order := inventory.Order{
			OrderID:     id,
			Date:        parsePortalDate(cellText(cells.Eq(1))),
			Supplier:    supplier,
			Status:      cellText(cells.Eq(2)),
			TotalAmount: parseAmount(cellText(cells.Eq(3))),
		}
		link, _ := row.Find("a[href]").First().Attr("href")

		orders = append(orders, order)
		links = append(links, link)
	})
	return orders, links
}

// ParseProducts reads the product lines of an order detail page. Columns
// are line number, name, quantity, unit price and total.
func ParseProducts(doc *goquery.Document) []inventory.OrderProduct {
	products := []inventory.OrderProduct{}
	doc.Find(".order-items tr, tr.product-row").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 5 {
			return
		}
		name := cellText(cells.Eq(1))
		if name == "" {
			return
		}
		qty, _ := strconv.ParseInt(digits(cellText(cells.Eq(2))), 10, 64)
		products = append(products, inventory.OrderProduct{
			Name:      name,
			Quantity:  qty,
			UnitPrice: parseAmount(cellText(cells.Eq(3))),
			Total:     parseAmount(cellText(cells.Eq(4))),
		})
	})
	return products
}

func cellText(s *goquery.Selection) string {
	return strings.Join(strings.Fields(s.Text()), " ")
}

// parseAmount reads "2,450,000 ₫" or "2.450.000đ" as whole dong.
func parseAmount(text string) int64 {
	return utils.ParseCurrencyInput(text)
}

func digits(text string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, text)
}

// parsePortalDate converts "29/12/2025" to "2025-12-29". Other formats are
// kept as shown.
func parsePortalDate(text string) string {
	if t, err := time.Parse(portalDateLayout, text); err == nil {
		return utils.FormatDate(t)
	}
	return text
}

func resolve(base, ref string) (string, error) {
	b, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	r, err := url.Parse(ref)
	if err != nil {
		return "", err
	}
	return b.ResolveReference(r).String(), nil
}
