package roundup

import "github.com/shopspring/decimal"

// Item is one transaction submitted to BatchCompute.
type Item struct {
	ID     string
	Amount decimal.Decimal
}

// ItemResult is the roundup for one batch item.
type ItemResult struct {
	ID string
	Result
}

// Batch is the outcome of BatchCompute.
type Batch struct {
	Processed    int
	Skipped      int
	TotalRoundup decimal.Decimal
	Results      []ItemResult
}

// BatchCompute applies one rule to every item. The rule and boundary are
// checked once before any item is looked at, so a bad configuration fails
// the whole batch. Items whose amount is not positive, or carries more than
// two fractional digits, are skipped and left out of the results and the
// total. Results keep input order.
func BatchCompute(items []Item, rule Rule, boundary *decimal.Decimal) (Batch, error) {
	step, err := resolveStep(rule, boundary)
	if err != nil {
		return Batch{}, err
	}

	batch := Batch{
		TotalRoundup: decimal.Zero,
		Results:      make([]ItemResult, 0, len(items)),
	}
	for _, item := range items {
		if !isCurrencyAmount(item.Amount) {
			batch.Skipped++
			continue
		}
		res := compute(item.Amount, step)
		batch.Results = append(batch.Results, ItemResult{ID: item.ID, Result: res})
		batch.TotalRoundup = batch.TotalRoundup.Add(res.RoundupAmount)
	}
	batch.Processed = len(batch.Results)

	return batch, nil
}
