package llm

// Price is USD per million tokens.
type Price struct {
	Input  float64
	Output float64
}

// Pricing snapshot from models.dev, 2026-02.
var prices = map[string]Price{
	"claude-haiku-4-5-20251001": {1, 5},
	"claude-sonnet-4-20250514":  {3, 15},
	"claude-sonnet-4-5":         {3, 15},
	"gpt-4o":                    {2.5, 10},
	"gpt-4o-mini":               {0.15, 0.6},
	"gpt-4.1-mini":              {0.4, 1.6},
	"gpt-5-mini":                {0.25, 2},
	"gemini-2.0-flash":          {0.1, 0.4},
	"gemini-2.5-flash":          {0.3, 2.5},
	"gemini-2.5-pro":            {1.25, 10},
}

// EstimateCost returns the USD cost of u on model. ok is false for models
// without a known price.
func EstimateCost(model string, u Usage) (usd float64, ok bool) {
	p, ok := prices[model]
	if !ok {
		return 0, false
	}
	return (float64(u.InputTokens)*p.Input + float64(u.OutputTokens)*p.Output) / 1_000_000, true
}
