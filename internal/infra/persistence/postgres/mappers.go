package postgres

import (
	"crm/internal/domain/entity"
	"crm/internal/infra/persistence/model"
)

func fromCustomerDomain(c *entity.Customer) *model.CustomerModel {
	return &model.CustomerModel{
		ID:           c.ID,
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		Email:        c.Email,
		Phone:        c.Phone,
		Segment:      c.Segment,
		Gender:       c.Gender,
		DateOfBirth:  c.DateOfBirth,
		CurrentStage: c.CurrentStage.String(),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func toCustomerDomain(m *model.CustomerModel) *entity.Customer {
	return &entity.Customer{
		ID:           m.ID,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Email:        m.Email,
		Phone:        m.Phone,
		Segment:      m.Segment,
		Gender:       m.Gender,
		DateOfBirth:  m.DateOfBirth,
		CurrentStage: entity.Stage(m.CurrentStage),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func fromActivityDomain(a *entity.Activity) *model.ActivityModel {
	return &model.ActivityModel{
		ID:           a.ID,
		CustomerID:   a.CustomerID,
		ActivityType: a.Type.String(),
		Processed:    a.Processed,
		ProcessedAt:  a.ProcessedAt,
		CreatedAt:    a.CreatedAt,
	}
}

// toActivityDomain keeps the stored type string as-is; the reconciler resolves it.
func toActivityDomain(m *model.ActivityModel) *entity.Activity {
	return &entity.Activity{
		ID:          m.ID,
		CustomerID:  m.CustomerID,
		Type:        entity.ActivityType(m.ActivityType),
		Processed:   m.Processed,
		ProcessedAt: m.ProcessedAt,
		CreatedAt:   m.CreatedAt,
	}
}

func toActivityDomainList(models []*model.ActivityModel) []*entity.Activity {
	activities := make([]*entity.Activity, len(models))
	for i, m := range models {
		activities[i] = toActivityDomain(m)
	}

	return activities
}

func fromProductDomain(p *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:            p.ID,
		Title:         p.Title,
		Description:   p.Description,
		Price:         p.Price,
		Available:     p.Available,
		BestSeller:    p.BestSeller,
		Rating:        p.Rating,
		PurchaseCount: p.PurchaseCount,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func toProductDomainList(models []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, len(models))
	for i, m := range models {
		products[i] = &entity.Product{
			ID:            m.ID,
			Title:         m.Title,
			Description:   m.Description,
			Price:         m.Price,
			Available:     m.Available,
			BestSeller:    m.BestSeller,
			Rating:        m.Rating,
			PurchaseCount: m.PurchaseCount,
			CreatedAt:     m.CreatedAt,
			UpdatedAt:     m.UpdatedAt,
		}
	}

	return products
}

func fromOperatorDomain(o *entity.Operator) *model.OperatorModel {
	return &model.OperatorModel{
		ID:           o.ID,
		Email:        o.Email,
		PasswordHash: o.PasswordHash,
		Role:         o.Role.String(),
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}

func toOperatorDomain(m *model.OperatorModel) *entity.Operator {
	return &entity.Operator{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         entity.Role(m.Role),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func fromStageTransitionDomain(t *entity.StageTransition) *model.StageTransitionModel {
	return &model.StageTransitionModel{
		ID:         t.ID,
		EventID:    t.EventID,
		CustomerID: t.CustomerID,
		FromStage:  t.FromStage.String(),
		ToStage:    t.ToStage.String(),
		ActivityID: t.ActivityID,
		Source:     string(t.Source),
		OccurredAt: t.OccurredAt,
	}
}

func toStageTransitionDomain(m *model.StageTransitionModel) *entity.StageTransition {
	return &entity.StageTransition{
		ID:         m.ID,
		EventID:    m.EventID,
		CustomerID: m.CustomerID,
		FromStage:  entity.Stage(m.FromStage),
		ToStage:    entity.Stage(m.ToStage),
		ActivityID: m.ActivityID,
		Source:     entity.TransitionSource(m.Source),
		OccurredAt: m.OccurredAt,
	}
}
