package driver

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/openledgerio/booksync/types"
	"github.com/openledgerio/booksync/utils/logger"
)

// renderPath substitutes {placeholder} segments from the request context and
// reports which context keys were consumed. An unbound placeholder is a
// configuration error, the request would address a nonexistent resource.
func renderPath(template string, context types.RequestContext) (string, *types.Set[string], error) {
	consumed := types.NewSet[string]()
	path := template
	for key, value := range context {
		placeholder := "{" + key + "}"
		if strings.Contains(path, placeholder) {
			path = strings.ReplaceAll(path, placeholder, url.PathEscape(value))
			consumed.Insert(key)
		}
	}
	if idx := strings.IndexByte(path, '{'); idx >= 0 {
		return "", nil, fmt.Errorf("path %q has unbound placeholder %s", template, path[idx:])
	}
	return path, consumed, nil
}

// buildParams assembles the query for one page request. Context keys not
// consumed by path placeholders travel as query parameters, which is how the
// organization scope reaches every endpoint.
func (z *ZohoBooks) buildParams(stream *types.Stream, rctx types.RequestContext, consumed *types.Set[string], page int) (url.Values, error) {
	params := url.Values{}
	for key, value := range rctx {
		if !consumed.Exists(key) {
			params.Set(key, value)
		}
	}
	params.Set("page", strconv.Itoa(page))

	if stream.IsReportStream {
		from, to, err := z.reportWindow(stream, rctx)
		if err != nil {
			return nil, err
		}
		params.Set("from_date", from)
		params.Set("to_date", to)
		if stream.CashBased {
			params.Set("cash_based", "true")
		}
		return params, nil
	}

	bound, err := z.resolveBound(stream, rctx)
	if err != nil {
		return nil, err
	}
	if bound != "" {
		params.Set("last_modified_time", bound)
	}
	return params, nil
}

// syncStream drains one stream under one request context: page by page,
// enrich, emit, advance the cursor, then fan out into children per record.
// Depth-first and single-threaded; the API's quota punishes parallelism.
func (z *ZohoBooks) syncStream(ctx context.Context, stream *types.Stream, rctx types.RequestContext) error {
	selected := z.selected.Exists(stream.Name)
	if !selected && !z.anyDescendantSelected(stream) {
		return nil
	}

	path, consumed, err := renderPath(stream.Path, rctx)
	if err != nil {
		return err
	}

	signature := rctx.Signature()
	if stream.IgnoreParentCursor {
		signature = ""
	}

	page := 1
	for {
		params, err := z.buildParams(stream, rctx, consumed, page)
		if err != nil {
			return err
		}
		resp, err := z.request(ctx, path, params, stream.Paced)
		if err != nil {
			return fmt.Errorf("stream %s: %s", stream.Name, err)
		}

		records, err := decodeRecords(resp.Body, stream.RecordsPath)
		if err != nil {
			return fmt.Errorf("stream %s: %s", stream.Name, err)
		}
		if selected && z.enrichmentEnabled(stream) {
			if err := z.enrich(ctx, stream, rctx, records); err != nil {
				return fmt.Errorf("stream %s: %s", stream.Name, err)
			}
		}

		for _, record := range records {
			if stream.Name == "organizations" && z.config.OrganizationID != "" {
				if fieldString(record, "organization_id") != z.config.OrganizationID {
					continue
				}
			}

			if selected {
				if err := z.writer.Write(ctx, stream.Name, record); err != nil {
					return fmt.Errorf("stream %s: failed to write record: %s", stream.Name, err)
				}
				if stream.ReplicationKey != "" {
					z.state.SetCursor(stream.Name, signature, stream.ReplicationKey, fieldString(record, stream.ReplicationKey))
				}
			}

			if err := z.dispatchChildren(ctx, stream, rctx, record); err != nil {
				return err
			}
		}

		next, more := nextPage(resp.Body)
		if !more {
			return nil
		}
		page = next
	}
}

func (z *ZohoBooks) dispatchChildren(ctx context.Context, stream *types.Stream, rctx types.RequestContext, record types.Record) error {
	if len(stream.Children) == 0 {
		return nil
	}
	if stream.ContextKey == "" {
		return nil
	}
	value := fieldString(record, stream.ContextKey)
	if value == "" {
		logger.Warnf("stream %s: record missing context key %s, skipping children", stream.Name, stream.ContextKey)
		return nil
	}
	childCtx := rctx.Fork(stream.ContextKey, value)
	for _, child := range stream.Children {
		if err := z.syncStream(ctx, child, childCtx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			// a failed subtree does not poison its siblings; emitted
			// records and cursor advances are already in state
			logger.Errorf("stream %s failed: %s", child.Name, err)
			z.failed = append(z.failed, child.Name)
		}
	}
	return nil
}

func (z *ZohoBooks) anyDescendantSelected(stream *types.Stream) bool {
	for _, child := range stream.Children {
		if z.selected.Exists(child.Name) || z.anyDescendantSelected(child) {
			return true
		}
	}
	return false
}

func (z *ZohoBooks) enrichmentEnabled(stream *types.Stream) bool {
	if !stream.RequiresDetailEnrichment || stream.Detail == nil {
		return false
	}
	switch stream.Detail.Toggle {
	case "use_item_details":
		return z.config.UseItemDetails
	case "use_sales_details":
		return z.config.UseSalesDetails
	}
	return true
}

// decodeRecords materializes the gjson results into mutable records.
func decodeRecords(body []byte, recordsPath string) ([]types.Record, error) {
	results := extractRecords(body, recordsPath)
	records := make([]types.Record, 0, len(results))
	for _, result := range results {
		var record types.Record
		if err := json.Unmarshal([]byte(result.Raw), &record); err != nil {
			return nil, fmt.Errorf("failed to decode record: %s", err)
		}
		records = append(records, record)
	}
	return records, nil
}

func fieldString(record types.Record, field string) string {
	switch v := record[field].(type) {
	case string:
		return v
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
