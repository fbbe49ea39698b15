package backendapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"tourcatalog/internal/core/domain/model/kernel"
	"tourcatalog/internal/core/domain/model/order"
	"tourcatalog/internal/core/domain/model/tour"
	"tourcatalog/internal/pkg/errs"
)

// Client implements the PackageGateway and OrderGateway ports against the
// backend REST surface.
//
// No retries and no client-side timeout: every remote failure requires a new
// user-initiated action, and an in-flight request is never cancelled from
// this side.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a gateway client for the backend at baseURL.
// Passing a nil httpClient falls back to a plain client without a timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// LoadPackages fetches the full catalog via GET /api/packages.
func (c *Client) LoadPackages(ctx context.Context) ([]*tour.Package, error) {
	const op = "load packages"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/packages", nil)
	if err != nil {
		return nil, errs.NewRemoteCallFailedErrorWithCause(op, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errs.NewRemoteCallFailedErrorWithCause(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errs.NewRemoteCallFailedErrorWithCause(op, unexpectedStatus(resp.StatusCode))
	}

	var dtos []packageDTO
	if err := json.NewDecoder(resp.Body).Decode(&dtos); err != nil {
		return nil, errs.NewRemoteCallFailedErrorWithCause(op, err)
	}

	packages := make([]*tour.Package, len(dtos))
	for i, dto := range dtos {
		pkg, err := dto.toDomain()
		if err != nil {
			return nil, err
		}
		packages[i] = pkg
	}
	return packages, nil
}

// UpdatePackage sends a partial edit via PUT /api/packages/{id}.
// The backend echoes the updated fields; the body is not consumed, the
// already validated local partial is merged by the caller instead.
func (c *Client) UpdatePackage(ctx context.Context, id kernel.ID, update tour.Update) error {
	const op = "update package"

	body, err := json.Marshal(fromDomainUpdate(update))
	if err != nil {
		return errs.NewRemoteCallFailedErrorWithCause(op, err)
	}

	endpoint := fmt.Sprintf("%s/api/packages/%s", c.baseURL, url.PathEscape(id.String()))
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, bytes.NewReader(body))
	if err != nil {
		return errs.NewRemoteCallFailedErrorWithCause(op, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.NewRemoteCallFailedErrorWithCause(op, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return errs.NewObjectNotFoundError("packageId", id.String())
	case resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices:
		return errs.NewRemoteCallFailedErrorWithCause(op, unexpectedStatus(resp.StatusCode))
	}
	return nil
}

// DeletePackage removes a package via DELETE /api/packages/{id}.
func (c *Client) DeletePackage(ctx context.Context, id kernel.ID) error {
	const op = "delete package"

	endpoint := fmt.Sprintf("%s/api/packages/%s", c.baseURL, url.PathEscape(id.String()))
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return errs.NewRemoteCallFailedErrorWithCause(op, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.NewRemoteCallFailedErrorWithCause(op, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return errs.NewObjectNotFoundError("packageId", id.String())
	case resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices:
		return errs.NewRemoteCallFailedErrorWithCause(op, unexpectedStatus(resp.StatusCode))
	}
	return nil
}

// CreateOrder persists a draft via POST /api/orders and returns the created
// order with its backend-assigned identifier.
func (c *Client) CreateOrder(ctx context.Context, draft *order.Order) (*order.Order, error) {
	const op = "create order"

	if err := draft.Validate(); err != nil {
		return nil, err
	}

	body, err := json.Marshal(fromDomainDraft(draft))
	if err != nil {
		return nil, errs.NewRemoteCallFailedErrorWithCause(op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/orders", bytes.NewReader(body))
	if err != nil {
		return nil, errs.NewRemoteCallFailedErrorWithCause(op, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errs.NewRemoteCallFailedErrorWithCause(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, errs.NewRemoteCallFailedErrorWithCause(op, unexpectedStatus(resp.StatusCode))
	}

	var dto orderDTO
	if err := json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		return nil, errs.NewRemoteCallFailedErrorWithCause(op, err)
	}
	return dto.toDomain()
}

// GetOrdersForUser fetches a user's orders via GET /api/orders/user/{userId}.
func (c *Client) GetOrdersForUser(ctx context.Context, userID kernel.ID) ([]*order.Order, error) {
	const op = "get orders for user"

	endpoint := fmt.Sprintf("%s/api/orders/user/%s", c.baseURL, url.PathEscape(userID.String()))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errs.NewRemoteCallFailedErrorWithCause(op, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errs.NewRemoteCallFailedErrorWithCause(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errs.NewRemoteCallFailedErrorWithCause(op, unexpectedStatus(resp.StatusCode))
	}

	var dtos []orderDTO
	if err := json.NewDecoder(resp.Body).Decode(&dtos); err != nil {
		return nil, errs.NewRemoteCallFailedErrorWithCause(op, err)
	}

	orders := make([]*order.Order, len(dtos))
	for i, dto := range dtos {
		ord, err := dto.toDomain()
		if err != nil {
			return nil, err
		}
		orders[i] = ord
	}
	return orders, nil
}

func unexpectedStatus(code int) error {
	return fmt.Errorf("unexpected status %d", code)
}
