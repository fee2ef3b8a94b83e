package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/creatorfund/creatorfund/internal/domain/creator"
	"github.com/creatorfund/creatorfund/internal/infrastructure/persistence/models"
)

func CreatorToModel(c *creator.Creator) (*models.CreatorModel, error) {
	methods := make([]models.PaymentMethodModel, 0, len(c.PaymentMethods()))
	for _, pm := range c.PaymentMethods() {
		m, err := PaymentMethodToModel(pm)
		if err != nil {
			return nil, err
		}
		methods = append(methods, *m)
	}

	return &models.CreatorModel{
		ID:             c.ID(),
		Slug:           c.Slug(),
		DisplayName:    c.DisplayName(),
		WebURL:         c.WebURL(),
		FeedURL:        c.FeedURL(),
		Description:    c.Description(),
		PaymentMethods: methods,
		CreatedAt:      models.NewUTCTime(c.CreatedAt()),
		UpdatedAt:      models.NewUTCTime(c.UpdatedAt()),
	}, nil
}

func CreatorToDomain(m *models.CreatorModel) (*creator.Creator, error) {
	methods := make([]*creator.PaymentMethod, 0, len(m.PaymentMethods))
	for i := range m.PaymentMethods {
		pm, err := PaymentMethodToDomain(&m.PaymentMethods[i])
		if err != nil {
			return nil, fmt.Errorf("creator %s: %w", m.Slug, err)
		}
		methods = append(methods, pm)
	}

	return creator.ReconstructCreatorWithParams(creator.CreatorReconstructParams{
		ID:             m.ID,
		Slug:           m.Slug,
		DisplayName:    m.DisplayName,
		WebURL:         m.WebURL,
		FeedURL:        m.FeedURL,
		Description:    m.Description,
		PaymentMethods: methods,
		CreatedAt:      m.CreatedAt.Time,
		UpdatedAt:      m.UpdatedAt.Time,
	}), nil
}

func CreatorsToDomain(ms []models.CreatorModel) ([]*creator.Creator, error) {
	result := make([]*creator.Creator, 0, len(ms))
	for i := range ms {
		c, err := CreatorToDomain(&ms[i])
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, nil
}

func PaymentMethodToModel(pm *creator.PaymentMethod) (*models.PaymentMethodModel, error) {
	details, err := json.Marshal(pm.Kind())
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s details: %w", pm.Kind().Type(), err)
	}
	return &models.PaymentMethodModel{
		ID:        pm.ID(),
		CreatorID: pm.CreatorID(),
		Type:      pm.Kind().Type(),
		Details:   datatypes.JSON(details),
		CreatedAt: models.NewUTCTime(pm.CreatedAt()),
	}, nil
}

// PaymentMethodToDomain decodes the variant selected by the type column.
func PaymentMethodToDomain(m *models.PaymentMethodModel) (*creator.PaymentMethod, error) {
	kind, err := creator.NewKind(m.Type)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(m.Details, kind); err != nil {
		return nil, fmt.Errorf("failed to decode %s details for payment method %d: %w", m.Type, m.ID, err)
	}
	return creator.ReconstructPaymentMethod(m.ID, m.CreatorID, kind, m.CreatedAt.Time), nil
}
