package controllers

import (
	"context"

	"crm/src/repositories"
	"crm/src/schemas"
	"crm/src/utils"
)

type QuoteControllerI interface {
	GetAllQuotes(ctx context.Context, page utils.Paginate) ([]*schemas.QuoteResponse, error)
	GetQuoteByID(ctx context.Context, id uint) (*schemas.QuoteResponse, error)
	CreateQuote(ctx context.Context, req *schemas.CreateQuoteRequest) (*schemas.QuoteResponse, error)
	UpdateQuote(ctx context.Context, req *schemas.UpdateQuoteRequest) (*schemas.QuoteResponse, error)
	DeleteQuote(ctx context.Context, id uint) error
	GetQuoteItems(ctx context.Context, quoteID uint) (*schemas.QuoteItemsResponse, error)
	AddQuoteItem(ctx context.Context, req *schemas.CreateQuoteItemRequest) (*schemas.QuoteItemResponse, error)
	DeleteQuoteItem(ctx context.Context, quoteID, itemID uint) error
}

type QuoteController struct {
	Quotes        repositories.QuoteRepository
	Opportunities repositories.OpportunityRepository
	Clock         Clock
}

func NewQuoteController(quotes repositories.QuoteRepository, opportunities repositories.OpportunityRepository, clock Clock) *QuoteController {
	return &QuoteController{Quotes: quotes, Opportunities: opportunities, Clock: clock}
}

func (c *QuoteController) GetAllQuotes(ctx context.Context, page utils.Paginate) ([]*schemas.QuoteResponse, error) {
	quotes, err := c.Quotes.GetAll(ctx, page)
	if err != nil {
		return nil, err
	}
	responses := make([]*schemas.QuoteResponse, 0, len(quotes))
	for i := range quotes {
		responses = append(responses, schemas.NewQuoteRowResponse(&quotes[i]))
	}
	return responses, nil
}

func (c *QuoteController) GetQuoteByID(ctx context.Context, id uint) (*schemas.QuoteResponse, error) {
	quote, err := c.Quotes.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, "quote")
	}
	return schemas.NewQuoteResponse(quote), nil
}

// CreateQuote stores a quote for an existing opportunity. A missing quote
// number is generated from the next id.
func (c *QuoteController) CreateQuote(ctx context.Context, req *schemas.CreateQuoteRequest) (*schemas.QuoteResponse, error) {
	req.Normalize(today(c.Clock))
	if err := schemas.Validate(req); err != nil {
		return nil, err
	}
	err := requireRef(req.OpportunityID, "opportunity_id", func(id uint) (bool, error) {
		return c.Opportunities.Exists(ctx, id)
	})
	if err != nil {
		return nil, err
	}

	quote, err := req.ToModel()
	if err != nil {
		return nil, err
	}
	if quote.QuoteNumber == "" {
		quote.QuoteNumber, err = c.Quotes.NextQuoteNumber(ctx)
		if err != nil {
			return nil, err
		}
	}
	if err := c.Quotes.Create(ctx, quote); err != nil {
		return nil, translate(err, "quote number "+quote.QuoteNumber)
	}
	return schemas.NewQuoteResponse(quote), nil
}

func (c *QuoteController) UpdateQuote(ctx context.Context, req *schemas.UpdateQuoteRequest) (*schemas.QuoteResponse, error) {
	req.Normalize()
	if err := schemas.Validate(req); err != nil {
		return nil, err
	}
	quote, err := c.Quotes.GetByID(ctx, req.ID)
	if err != nil {
		return nil, translate(err, "quote")
	}
	if err := req.Apply(quote); err != nil {
		return nil, err
	}
	if err := c.Quotes.Update(ctx, quote); err != nil {
		return nil, translate(err, "quote number "+quote.QuoteNumber)
	}
	return schemas.NewQuoteResponse(quote), nil
}

func (c *QuoteController) DeleteQuote(ctx context.Context, id uint) error {
	return translate(c.Quotes.Delete(ctx, id), "quote")
}

func (c *QuoteController) GetQuoteItems(ctx context.Context, quoteID uint) (*schemas.QuoteItemsResponse, error) {
	if _, err := c.Quotes.GetByID(ctx, quoteID); err != nil {
		return nil, translate(err, "quote")
	}
	items, err := c.Quotes.GetItems(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	response := &schemas.QuoteItemsResponse{Items: make([]*schemas.QuoteItemResponse, 0, len(items))}
	for i := range items {
		item := schemas.NewQuoteItemResponse(&items[i])
		response.Items = append(response.Items, item)
		response.Total += item.LineTotal
	}
	return response, nil
}

func (c *QuoteController) AddQuoteItem(ctx context.Context, req *schemas.CreateQuoteItemRequest) (*schemas.QuoteItemResponse, error) {
	req.Normalize()
	if err := schemas.Validate(req); err != nil {
		return nil, err
	}
	if _, err := c.Quotes.GetByID(ctx, req.QuoteID); err != nil {
		return nil, translate(err, "quote")
	}
	item := req.ToModel()
	if err := c.Quotes.AddItem(ctx, item); err != nil {
		return nil, translate(err, "quote item")
	}
	return schemas.NewQuoteItemResponse(item), nil
}

func (c *QuoteController) DeleteQuoteItem(ctx context.Context, quoteID, itemID uint) error {
	return translate(c.Quotes.DeleteItem(ctx, quoteID, itemID), "quote item")
}
