package agent

import (
	"context"
	"fmt"

	"github.com/evdv/stockpile"
	"github.com/evdv/stockpile/docs"
	"github.com/evdv/stockpile/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// newFacilitator builds the expert that owns the conversation and delegates
// to the others.
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about each expert's skill from the Tools and ask them questions.
			They are at your service and keep context of your previous questions.

			The user runs a shop of perishable goods and is here to understand
			their stock: what is on the shelf, what expired, what the figures are.
			Devise a plan of questions to the experts and come up with the best
			response to the user's request.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewClerk returns the expert that reads the inventory ledgers.
func NewClerk() *Expert {
	lib := []Function{Stock, Spoilage, Figures}
	return &Expert{
		Name: "Clerk",
		Description: `This is the stock clerk. He reads the shop's ledgers and
		can tell what is on the shelf on any date, what has expired unsold, and
		the revenue, cost and profit figures.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are the clerk of a perishable goods shop. You know how to use
				the Tools to read the shop's ledgers. The other experts might ask
				you questions about the stock; pardon their approximative language
				and figure out what they meant.

				Use the available tools to get
				  - the stock on hand on a date
				  - the goods that expired unsold
				  - the financial figures
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// NewBuyer returns the expert with search access, for questions the ledgers
// cannot answer, like current market prices of produce.
func NewBuyer() *Expert {
	return &Expert{
		Name: "Buyer",
		Description: `This is the shop's buyer. He knows wholesale markets,
		seasonal produce and current prices. Ask the Buyer whenever you need
		recent or grounding information from outside the shop's ledgers.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert produce buyer. You can search and find anything
			about wholesale markets, suppliers, seasonal goods and their prices.
			You leverage Google Search to ground your assertions.
				`}}},
		},
	}
}

// Func implements Function from a declaration and a callback.
type Func struct {
	Decl *genai.FunctionDeclaration
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

var dateSchema = &genai.Schema{
	Type: genai.TypeString,
	Description: `The date on which to answer. The simulated current date is
	the default. Below is the doc about reporting dates:

	` + must(docs.GetTopic("reporting")),
}

var productSchema = &genai.Schema{
	Type:        genai.TypeString,
	Description: "The product name to restrict to. Empty means every product.",
}

// Stock reports the goods on the shelf on a date.
var Stock = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "Stock",
		Description: `Stock lists the goods on the shelf on the given date:
		every lot bought on or before it, not yet expired, with sold
		quantities subtracted.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"date":    dateSchema,
				"product": productSchema,
			},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown table of the lots on hand with their remaining quantities.",
		},
	},
	Func: toolFunc("Stock", func(inv *stockpile.Inventory, name, day string) (string, error) {
		lots, total, err := inv.Available(name, day)
		if err != nil {
			return "", err
		}
		return renderer.RenderProducts(renderer.ProductsView{
			Title:    "Stock on " + day,
			Lots:     lots,
			Total:    total,
			Currency: inv.Config().Currency,
		}), nil
	}),
}

// Spoilage reports the goods that expired without being sold.
var Spoilage = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "Spoilage",
		Description: `Spoilage lists the goods whose expiration date passed on
		or before the given date while still on the shelf.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"date":    dateSchema,
				"product": productSchema,
			},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown table of the expired lots with their remaining quantities.",
		},
	},
	Func: toolFunc("Spoilage", func(inv *stockpile.Inventory, name, day string) (string, error) {
		lots, err := inv.Expired(name, day)
		if err != nil {
			return "", err
		}
		total := 0
		for _, lot := range lots {
			total += lot.Quantity
		}
		return renderer.RenderProducts(renderer.ProductsView{
			Title:    "Expired on " + day,
			Lots:     lots,
			Total:    total,
			Currency: inv.Config().Currency,
		}), nil
	}),
}

// Figures reports revenue, cost and profit for a date, month or year.
var Figures = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "Figures",
		Description: `Figures computes the revenue, cost and profit for the
		given date, which may be a full day, a month or a year.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"date":    dateSchema,
				"product": productSchema,
			},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "Revenue, cost and profit with the display currency.",
		},
	},
	Func: toolFunc("Figures", func(inv *stockpile.Inventory, name, day string) (string, error) {
		reports := stockpile.NewReports(inv)
		revenue, err := reports.Revenue(name, day)
		if err != nil {
			return "", err
		}
		cost, err := reports.Cost(name, day)
		if err != nil {
			return "", err
		}
		profit, err := reports.Profit(name, day)
		if err != nil {
			return "", err
		}
		cur := inv.Config().Currency
		return fmt.Sprintf("Revenue: %s\nCost: %s\nProfit: %s\n",
			stockpile.M(revenue, cur), stockpile.M(cost, cur), stockpile.M(profit, cur)), nil
	}),
}

// toolFunc wraps a ledger-reading function into the callback shape the
// library expects, with the shared argument handling.
func toolFunc(name string, fn func(inv *stockpile.Inventory, product, day string) (string, error)) func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		fresp := &genai.FunctionResponse{
			ID:       id,
			Name:     name,
			Response: map[string]any{},
		}

		inv, err := openInventory()
		if err != nil {
			fresp.Response["error"] = err.Error()
			return fresp
		}
		product := stringArg(args, "product")
		day := stringArg(args, "date")
		if day == "" {
			if day, err = inv.Clock().Get(); err != nil {
				fresp.Response["error"] = err.Error()
				return fresp
			}
		}

		output, err := fn(inv, product, day)
		if err != nil {
			fresp.Response["error"] = err.Error()
			return fresp
		}
		fresp.Response["output"] = output
		return fresp
	}
}

// openInventory loads the default configuration and opens the ledgers.
func openInventory() (*stockpile.Inventory, error) {
	cfg, err := stockpile.LoadConfig("")
	if err != nil {
		return nil, fmt.Errorf("could not load configuration: %w", err)
	}
	return stockpile.NewInventory(cfg), nil
}

func stringArg(args map[string]any, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}
