package testutil

import (
	"time"

	"contactcentre/internal/cases/models"
	"contactcentre/pkg/domain"
)

// CaseBuilder builds directory cases for tests. The zero configuration is an
// English household case at a single address.
type CaseBuilder struct {
	c models.Case
}

func NewCaseBuilder() *CaseBuilder {
	return &CaseBuilder{c: models.Case{
		ID:          domain.NewCaseID(),
		CaseRef:     1000000017,
		CaseType:    models.CaseTypeHH,
		RawCaseType: string(models.CaseTypeHH),
		RegionCode:  "E1000",
		Address: models.Address{
			UPRN:         1347459999,
			AddressLine1: "1 Main Street",
			TownName:     "Exeter",
			Postcode:     "EX1 1AA",
			Region:       "E",
		},
		CreatedDateTime: time.Date(2021, 3, 19, 9, 30, 0, 0, time.UTC),
	}}
}

func (b *CaseBuilder) WithType(caseType models.CaseType) *CaseBuilder {
	b.c.CaseType = caseType
	b.c.RawCaseType = string(caseType)
	return b
}

func (b *CaseBuilder) WithRegionCode(code string) *CaseBuilder {
	b.c.RegionCode = code
	if code != "" {
		b.c.Address.Region = code[:1]
	}
	return b
}

func (b *CaseBuilder) HandDelivered() *CaseBuilder {
	b.c.HandDelivery = true
	return b
}

func (b *CaseBuilder) CreatedAt(t time.Time) *CaseBuilder {
	b.c.CreatedDateTime = t
	return b
}

func (b *CaseBuilder) WithEvents(events ...models.CaseEvent) *CaseBuilder {
	b.c.Events = append(b.c.Events, events...)
	return b
}

func (b *CaseBuilder) Build() *models.Case {
	c := b.c
	c.Events = append([]models.CaseEvent(nil), b.c.Events...)
	return &c
}
