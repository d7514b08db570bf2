package swgohgg

import (
	"bytes"
	"context"
	"modfinder/lib/restyutil"
	"net/url"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// DefaultUrl is the mod meta report of the top 100 guilds by galactic power.
const DefaultUrl = "https://swgoh.gg/stats/mod-meta-report/guilds_100_gp/"

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"

type ClientOptions struct {
	Url            string `json:"url"`
	TimeoutSeconds int    `json:"timeout_seconds"`
	UserAgent      string `json:"user_agent"`

	// the report sits behind cloudflare, the bypass transport is on unless disabled
	DisableCloudflareBypass bool `json:"disable_cloudflare_bypass"`
}

// Client fetches the mod meta report. It holds no state between calls and
// is safe for concurrent use.
type Client struct {
	Url  *url.URL
	Http *resty.Client
}

func NewClient(opts ClientOptions) (*Client, error) {
	if opts.Url == "" {
		opts.Url = DefaultUrl
	}
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}
	if opts.TimeoutSeconds <= 0 {
		opts.TimeoutSeconds = 30
	}

	link, err := url.Parse(opts.Url)
	if err != nil {
		return nil, err
	}

	client := resty.New()
	if !opts.DisableCloudflareBypass {
		client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	}
	client.SetHeader("user-agent", opts.UserAgent)
	client.SetTimeout(time.Second * time.Duration(opts.TimeoutSeconds))
	restyutil.InstrumentClient(client, tracer, restyInstrumentOutput)

	return &Client{
		Url:  link,
		Http: client,
	}, nil
}

// FetchDocument downloads and parses the report page.
func (c *Client) FetchDocument(ctx context.Context) (*goquery.Document, error) {
	ctx, span := tracer.Start(ctx, "client:FetchDocument")
	defer span.End()

	link := c.Url.String()
	span.SetAttributes(attribute.String("url", link))

	res, err := c.Http.R().
		SetContext(ctx).
		Get(link)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch report")
		return nil, &FetchError{Url: link, Err: err}
	}
	if !res.IsSuccess() {
		span.SetStatus(codes.Error, "unexpected status")
		return nil, &FetchError{Url: link, StatusCode: res.StatusCode()}
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse html")
		return nil, &ParseError{Url: link, Err: err}
	}
	return doc, nil
}

// FetchRecords downloads the report and extracts its records.
func (c *Client) FetchRecords(ctx context.Context) (Extraction, error) {
	doc, err := c.FetchDocument(ctx)
	if err != nil {
		return Extraction{}, err
	}
	return ExtractRecords(ctx, doc.Selection), nil
}
