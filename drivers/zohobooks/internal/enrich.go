package driver

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/goccy/go-json"

	"github.com/openledgerio/booksync/constants"
	"github.com/openledgerio/booksync/types"
	"github.com/openledgerio/booksync/utils"
	"github.com/openledgerio/booksync/utils/logger"
)

// enrich fills in fields the list endpoint omits by calling the bulk detail
// endpoint in batches. Records are mutated in place so emission order is the
// list order; a record whose id the detail endpoint does not return stays
// un-enriched. Detail fields never overwrite list fields.
func (z *ZohoBooks) enrich(ctx context.Context, stream *types.Stream, rctx types.RequestContext, records []types.Record) error {
	detail := stream.Detail
	if detail.IDParam == "" {
		// misconfigured registry entry, retrying cannot fix it
		return fmt.Errorf("detail enrichment for %s has no id parameter configured", stream.Name)
	}
	key := stream.PrimaryKeys[0]

	byID := types.NewOrderedMap[string, types.Record]()
	for _, record := range records {
		if id := fieldString(record, key); id != "" {
			byID.Set(id, record)
		}
	}
	if byID.Len() == 0 {
		return nil
	}

	for _, batch := range utils.ChunkSlice(byID.Keys(), constants.DetailBatchSize) {
		params := url.Values{}
		for k, v := range rctx {
			params.Set(k, v)
		}
		params.Set(detail.IDParam, strings.Join(batch, ","))

		resp, err := z.request(ctx, detail.Path, params, true)
		if err != nil {
			return fmt.Errorf("detail request failed: %s", err)
		}

		matched := 0
		for _, result := range extractRecords(resp.Body, detail.RecordsPath) {
			var det types.Record
			if err := json.Unmarshal([]byte(result.Raw), &det); err != nil {
				return fmt.Errorf("failed to decode detail record: %s", err)
			}
			primary, ok := byID.Get(fieldString(det, key))
			if !ok {
				continue
			}
			primary.MergeMissing(det)
			matched++
		}
		if matched < len(batch) {
			logger.Debugf("stream %s: detail endpoint returned %d of %d requested records", stream.Name, matched, len(batch))
		}
	}
	return nil
}
