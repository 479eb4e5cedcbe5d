package alphaess

import (
	"bytes"
	"context"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/alphabridge/alphabridge/pkg/common"
	"github.com/alphabridge/alphabridge/pkg/log"
	"github.com/alphabridge/alphabridge/pkg/types"
)

const defaultBaseURL = "https://openapi.alphaess.com/api"

// APIError is a non-success response from the vendor API.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("alphaess api error %d: %s", e.Code, e.Message)
}

// Client talks to the AlphaESS Open API. Every request is signed with the
// application ID and secret; no state is mutated after New, so a single
// Client is shared safely across concurrent calls.
type Client struct {
	client    *http.Client
	baseURL   string
	appID     string
	appSecret string
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL overrides the vendor API base URL.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithTimeout overrides the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.client = common.HTTPClient(d) }
}

// WithHTTPClient overrides the HTTP client entirely.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// New returns a Client for the given application credentials.
func New(appID, appSecret string, opts ...Option) (*Client, error) {
	if appID == "" {
		return nil, errors.New("missing AlphaESS application ID")
	}
	if appSecret == "" {
		return nil, errors.New("missing AlphaESS application secret")
	}
	c := &Client{
		client:    common.HTTPClient(time.Minute),
		baseURL:   defaultBaseURL,
		appID:     appID,
		appSecret: appSecret,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// sign computes the request signature for the given unix timestamp.
func (c *Client) sign(timestamp string) string {
	sum := sha512.Sum512([]byte(c.appID + c.appSecret + timestamp))
	return hex.EncodeToString(sum[:])
}

func (c *Client) setAuthHeaders(req *http.Request) {
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	req.Header.Set("appId", c.appID)
	req.Header.Set("timeStamp", timestamp)
	req.Header.Set("sign", c.sign(timestamp))
}

func (c *Client) newGetRequest(ctx context.Context, endpoint string, params url.Values) (*http.Request, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, err
	}
	u.Path, err = url.JoinPath(u.Path, endpoint)
	if err != nil {
		return nil, err
	}

	u.RawQuery = params.Encode()
	return http.NewRequestWithContext(ctx, "GET", u.String(), nil)
}

func (c *Client) newPostJSONRequest(ctx context.Context, endpoint string, data interface{}) (*http.Request, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, err
	}
	u.Path, err = url.JoinPath(u.Path, endpoint)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, "POST", u.String(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

type apiResponse struct {
	Code   int             `json:"code"`
	Msg    string          `json:"msg"`
	ExpMsg string          `json:"expMsg"`
	Data   json.RawMessage `json:"data"`
}

// doRequest signs and performs the request and decodes the vendor envelope
// into dest. Each call is attempted exactly once.
func (c *Client) doRequest(req *http.Request, dest interface{}) error {
	c.setAuthHeaders(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var ar apiResponse
	if err := json.Unmarshal(body, &ar); err != nil {
		log.Ctx(req.Context()).ErrorContext(req.Context(), "failed to decode alphaess response", slog.Any("error", err), slog.String("body", string(body)))
		return fmt.Errorf("failed to decode alphaess response: %w", err)
	}

	if ar.Code != 200 {
		msg := ar.Msg
		if ar.ExpMsg != "" && ar.ExpMsg != ar.Msg {
			msg = msg + ": " + ar.ExpMsg
		}
		if msg == "" {
			msg = "unknown error"
		}
		log.Ctx(req.Context()).ErrorContext(req.Context(), "alphaess api error", slog.Int("code", ar.Code), slog.String("message", msg))
		return &APIError{Code: ar.Code, Message: msg}
	}

	if dest != nil && len(ar.Data) > 0 && !bytes.Equal(ar.Data, []byte("null")) {
		if err := json.Unmarshal(ar.Data, dest); err != nil {
			log.Ctx(req.Context()).ErrorContext(req.Context(), "failed to decode alphaess data", slog.Any("error", err))
			return fmt.Errorf("failed to decode alphaess data: %w", err)
		}
	}
	return nil
}

// Authenticate performs a credential check by listing the account's systems.
// The Open API has no dedicated auth endpoint; an accepted signed request
// proves the appId/secret pair is valid.
func (c *Client) Authenticate(ctx context.Context) error {
	if _, err := c.GetESSList(ctx); err != nil {
		return err
	}
	log.Ctx(ctx).DebugContext(ctx, "alphaess credentials validated")
	return nil
}

// GetESSList returns every system registered to the account.
func (c *Client) GetESSList(ctx context.Context) ([]System, error) {
	req, err := c.newGetRequest(ctx, "getEssList", nil)
	if err != nil {
		return nil, err
	}

	var list []System
	if err := c.doRequest(req, &list); err != nil {
		return nil, fmt.Errorf("getEssList failed: %w", err)
	}
	return list, nil
}

// GetLastPowerData returns the live power snapshot for a system.
func (c *Client) GetLastPowerData(ctx context.Context, serial string) (*LastPowerData, error) {
	params := url.Values{}
	params.Set("sysSn", serial)

	req, err := c.newGetRequest(ctx, "getLastPowerData", params)
	if err != nil {
		return nil, err
	}

	var data LastPowerData
	if err := c.doRequest(req, &data); err != nil {
		return nil, fmt.Errorf("getLastPowerData failed: %w", err)
	}
	return &data, nil
}

// GetOneDayPower returns the 10-minute power series for one date.
func (c *Client) GetOneDayPower(ctx context.Context, serial, date string) ([]PowerRecord, error) {
	params := url.Values{}
	params.Set("sysSn", serial)
	params.Set("queryDate", date)

	req, err := c.newGetRequest(ctx, "getOneDayPowerBySn", params)
	if err != nil {
		return nil, err
	}

	var records []PowerRecord
	if err := c.doRequest(req, &records); err != nil {
		return nil, fmt.Errorf("getOneDayPowerBySn failed: %w", err)
	}
	return records, nil
}

// GetOneDateEnergy returns the energy totals for one date.
func (c *Client) GetOneDateEnergy(ctx context.Context, serial, date string) (*EnergyData, error) {
	params := url.Values{}
	params.Set("sysSn", serial)
	params.Set("queryDate", date)

	req, err := c.newGetRequest(ctx, "getOneDateEnergyBySn", params)
	if err != nil {
		return nil, err
	}

	var data EnergyData
	if err := c.doRequest(req, &data); err != nil {
		return nil, fmt.Errorf("getOneDateEnergyBySn failed: %w", err)
	}
	return &data, nil
}

// GetSumData returns the aggregate statistics for a system.
func (c *Client) GetSumData(ctx context.Context, serial string) (*SumData, error) {
	params := url.Values{}
	params.Set("sysSn", serial)

	req, err := c.newGetRequest(ctx, "getSumDataForCustomer", params)
	if err != nil {
		return nil, err
	}

	var data SumData
	if err := c.doRequest(req, &data); err != nil {
		return nil, fmt.Errorf("getSumDataForCustomer failed: %w", err)
	}
	return &data, nil
}

// GetChargeConfig returns the grid-charge schedule.
func (c *Client) GetChargeConfig(ctx context.Context, serial string) (*ChargeConfig, error) {
	params := url.Values{}
	params.Set("sysSn", serial)

	req, err := c.newGetRequest(ctx, "getChargeConfigInfo", params)
	if err != nil {
		return nil, err
	}

	var cfg ChargeConfig
	if err := c.doRequest(req, &cfg); err != nil {
		return nil, fmt.Errorf("getChargeConfigInfo failed: %w", err)
	}
	return &cfg, nil
}

// GetDischargeConfig returns the discharge schedule.
func (c *Client) GetDischargeConfig(ctx context.Context, serial string) (*DischargeConfig, error) {
	params := url.Values{}
	params.Set("sysSn", serial)

	req, err := c.newGetRequest(ctx, "getDisChargeConfigInfo", params)
	if err != nil {
		return nil, err
	}

	var cfg DischargeConfig
	if err := c.doRequest(req, &cfg); err != nil {
		return nil, fmt.Errorf("getDisChargeConfigInfo failed: %w", err)
	}
	return &cfg, nil
}

// UpdateChargeConfig validates and submits a new grid-charge schedule.
// Invalid windows or cutoff reject the update before anything is sent.
func (c *Client) UpdateChargeConfig(ctx context.Context, serial string, cfg ChargeConfig) error {
	err := types.ValidateSchedule(
		types.Window{Start: cfg.TimeChaF1, End: cfg.TimeChaE1},
		types.Window{Start: cfg.TimeChaF2, End: cfg.TimeChaE2},
		cfg.BatHighCap,
	)
	if err != nil {
		return err
	}

	cfg.SysSN = serial
	req, err := c.newPostJSONRequest(ctx, "updateChargeConfigInfo", cfg)
	if err != nil {
		return err
	}

	if err := c.doRequest(req, nil); err != nil {
		return fmt.Errorf("updateChargeConfigInfo failed: %w", err)
	}
	log.Ctx(ctx).InfoContext(ctx, "updated charge config",
		slog.String("serial", serial),
		slog.Int("gridCharge", cfg.GridCharge),
		slog.Float64("batHighCap", cfg.BatHighCap),
	)
	return nil
}

// UpdateDischargeConfig validates and submits a new discharge schedule.
func (c *Client) UpdateDischargeConfig(ctx context.Context, serial string, cfg DischargeConfig) error {
	err := types.ValidateSchedule(
		types.Window{Start: cfg.TimeDisF1, End: cfg.TimeDisE1},
		types.Window{Start: cfg.TimeDisF2, End: cfg.TimeDisE2},
		cfg.BatUseCap,
	)
	if err != nil {
		return err
	}

	cfg.SysSN = serial
	req, err := c.newPostJSONRequest(ctx, "updateDisChargeConfigInfo", cfg)
	if err != nil {
		return err
	}

	if err := c.doRequest(req, nil); err != nil {
		return fmt.Errorf("updateDisChargeConfigInfo failed: %w", err)
	}
	log.Ctx(ctx).InfoContext(ctx, "updated discharge config",
		slog.String("serial", serial),
		slog.Int("ctrDis", cfg.CtrDis),
		slog.Float64("batUseCap", cfg.BatUseCap),
	)
	return nil
}
