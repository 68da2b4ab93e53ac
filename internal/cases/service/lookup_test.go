package service

import (
	"errors"
	"time"

	"go.uber.org/mock/gomock"

	"contactcentre/internal/cases/client"
	"contactcentre/internal/cases/models"
	"contactcentre/pkg/domain"
	dErrors "contactcentre/pkg/domain-errors"
	"contactcentre/pkg/platform/sentinel"
	"contactcentre/pkg/testutil"
)

func (s *ServiceSuite) TestGetCaseByID() {
	s.Run("legacy household case with events keeps whitelisted events in order", func() {
		c := s.newCase(models.CaseTypeH)
		c.Events = []models.CaseEvent{
			{Category: "CASE_UPDATED", Description: "second", CreatedDateTime: fixedNow.Add(-time.Hour)},
			{Category: "PRINT_FULFILMENT", Description: "hidden"},
			{Category: "CASE_CREATED", Description: "first", CreatedDateTime: fixedNow.Add(-2 * time.Hour)},
		}
		s.mockDirectory.EXPECT().GetCaseByID(s.ctx, c.ID, true).Return(c, nil)

		dto, err := s.service.GetCaseByID(s.ctx, c.ID, true)
		s.Require().NoError(err)
		s.Require().Len(dto.CaseEvents, 2)
		s.Equal("CASE_UPDATED", dto.CaseEvents[0].Category)
		s.Equal("CASE_CREATED", dto.CaseEvents[1].Category)
	})

	s.Run("events omitted when not requested", func() {
		c := testutil.NewCaseBuilder().
			WithType(models.CaseTypeH).
			WithEvents(models.CaseEvent{Category: "CASE_CREATED"}).
			Build()
		s.mockDirectory.EXPECT().GetCaseByID(s.ctx, c.ID, false).Return(c, nil)

		dto, err := s.service.GetCaseByID(s.ctx, c.ID, false)
		s.Require().NoError(err)
		s.Nil(dto.CaseEvents)
	})

	s.Run("events requested but none whitelisted is empty not absent", func() {
		c := s.newCase(models.CaseTypeHH)
		c.Events = []models.CaseEvent{{Category: "PRINT_FULFILMENT"}}
		s.mockDirectory.EXPECT().GetCaseByID(s.ctx, c.ID, true).Return(c, nil)

		dto, err := s.service.GetCaseByID(s.ctx, c.ID, true)
		s.Require().NoError(err)
		s.NotNil(dto.CaseEvents)
		s.Empty(dto.CaseEvents)
	})

	s.Run("household individual is forbidden", func() {
		c := s.newCase(models.CaseTypeHI)
		s.mockDirectory.EXPECT().GetCaseByID(s.ctx, c.ID, false).Return(c, nil)

		_, err := s.service.GetCaseByID(s.ctx, c.ID, false)
		s.requireCode(err, dErrors.CodeForbidden)
		s.Contains(err.Error(), "household individual")
	})

	s.Run("unrecognised case type is forbidden", func() {
		c := s.newCase(models.CaseTypeUnknown)
		c.RawCaseType = "NR"
		s.mockDirectory.EXPECT().GetCaseByID(s.ctx, c.ID, false).Return(c, nil)

		_, err := s.service.GetCaseByID(s.ctx, c.ID, false)
		s.requireCode(err, dErrors.CodeForbidden)
		s.Equal("Case is not a household or communal case", err.Error())
	})

	s.Run("allowed channels computed for hand-delivered SPG", func() {
		c := s.newCase(models.CaseTypeSPG)
		c.HandDelivery = true
		s.mockDirectory.EXPECT().GetCaseByID(s.ctx, c.ID, false).Return(c, nil)

		dto, err := s.service.GetCaseByID(s.ctx, c.ID, false)
		s.Require().NoError(err)
		s.Equal([]models.DeliveryChannel{models.DeliveryChannelSMS}, dto.AllowedDeliveryChannels)
	})

	s.Run("directory not found without cache", func() {
		id := domain.NewCaseID()
		s.mockDirectory.EXPECT().GetCaseByID(s.ctx, id, false).Return(nil, s.notFound())

		_, err := s.service.GetCaseByID(s.ctx, id, false)
		s.requireCode(err, dErrors.CodeNotFound)
	})

	s.Run("directory outage is a system error", func() {
		id := domain.NewCaseID()
		s.mockDirectory.EXPECT().GetCaseByID(s.ctx, id, false).
			Return(nil, &client.Error{Category: client.ErrorOutage, Message: "down"})

		_, err := s.service.GetCaseByID(s.ctx, id, false)
		s.requireCode(err, dErrors.CodeInternal)
	})

	s.Run("directory timeout", func() {
		id := domain.NewCaseID()
		s.mockDirectory.EXPECT().GetCaseByID(s.ctx, id, false).
			Return(nil, &client.Error{Category: client.ErrorTimeout})

		_, err := s.service.GetCaseByID(s.ctx, id, false)
		s.requireCode(err, dErrors.CodeTimeout)
	})
}

func (s *ServiceSuite) TestGetCaseByIDWithCache() {
	s.withCache()

	s.Run("found case is written through", func() {
		c := s.newCase(models.CaseTypeHH)
		s.mockDirectory.EXPECT().GetCaseByID(s.ctx, c.ID, false).Return(c, nil)
		s.mockCache.EXPECT().Put(s.ctx, models.NewCachedCase(c)).Return(nil)

		_, err := s.service.GetCaseByID(s.ctx, c.ID, false)
		s.Require().NoError(err)
	})

	s.Run("cache write failure does not fail the lookup", func() {
		c := s.newCase(models.CaseTypeHH)
		s.mockDirectory.EXPECT().GetCaseByID(s.ctx, c.ID, false).Return(c, nil)
		s.mockCache.EXPECT().Put(s.ctx, gomock.Any()).Return(errors.New("redis down"))

		dto, err := s.service.GetCaseByID(s.ctx, c.ID, false)
		s.Require().NoError(err)
		s.Equal(c.ID, dto.ID)
	})

	s.Run("directory miss answered from cache", func() {
		id := domain.NewCaseID()
		cached := &models.CachedCase{ID: id, UPRN: 42, CaseType: models.CaseTypeHH, Region: "W", AddressLine1: "2 Side Road"}
		s.mockDirectory.EXPECT().GetCaseByID(s.ctx, id, true).Return(nil, s.notFound())
		s.mockCache.EXPECT().GetByID(s.ctx, id).Return(cached, nil)

		dto, err := s.service.GetCaseByID(s.ctx, id, true)
		s.Require().NoError(err)
		s.Equal(id, dto.ID)
		s.Equal("42", dto.UPRN)
		s.NotNil(dto.CaseEvents)
		s.Empty(dto.CaseEvents)
	})

	s.Run("miss in both is not found", func() {
		id := domain.NewCaseID()
		s.mockDirectory.EXPECT().GetCaseByID(s.ctx, id, false).Return(nil, s.notFound())
		s.mockCache.EXPECT().GetByID(s.ctx, id).Return(nil, sentinel.ErrNotFound)

		_, err := s.service.GetCaseByID(s.ctx, id, false)
		s.requireCode(err, dErrors.CodeNotFound)
	})
}

func (s *ServiceSuite) TestGetCaseByUPRN() {
	s.Run("drops HI and unknown types preserving order", func() {
		first := s.newCase(models.CaseTypeHH)
		hi := s.newCase(models.CaseTypeHI)
		unknown := s.newCase(models.CaseTypeUnknown)
		second := s.newCase(models.CaseTypeCE)
		third := s.newCase(models.CaseTypeSPG)
		s.mockDirectory.EXPECT().GetCasesByUPRN(s.ctx, domain.UPRN(1347459999), false).
			Return([]models.Case{*first, *hi, *unknown, *second, *third}, nil)

		dtos, err := s.service.GetCaseByUPRN(s.ctx, 1347459999, false)
		s.Require().NoError(err)
		s.Require().Len(dtos, 3)
		s.Equal(first.ID, dtos[0].ID)
		s.Equal(second.ID, dtos[1].ID)
		s.Equal(third.ID, dtos[2].ID)
		for _, d := range dtos {
			s.Nil(d.CaseEvents)
		}
	})

	s.Run("only HI cases yields an empty list", func() {
		s.mockDirectory.EXPECT().GetCasesByUPRN(s.ctx, domain.UPRN(7), false).
			Return([]models.Case{*s.newCase(models.CaseTypeHI)}, nil)

		dtos, err := s.service.GetCaseByUPRN(s.ctx, 7, false)
		s.Require().NoError(err)
		s.NotNil(dtos)
		s.Empty(dtos)
	})

	s.Run("directory failure propagates", func() {
		s.mockDirectory.EXPECT().GetCasesByUPRN(s.ctx, domain.UPRN(8), false).
			Return(nil, &client.Error{Category: client.ErrorInternal})

		_, err := s.service.GetCaseByUPRN(s.ctx, 8, false)
		s.requireCode(err, dErrors.CodeInternal)
	})

	s.Run("empty directory result without cache", func() {
		s.mockDirectory.EXPECT().GetCasesByUPRN(s.ctx, domain.UPRN(9), false).Return([]models.Case{}, nil)

		dtos, err := s.service.GetCaseByUPRN(s.ctx, 9, false)
		s.Require().NoError(err)
		s.NotNil(dtos)
		s.Empty(dtos)
	})
}

func (s *ServiceSuite) TestGetCaseByUPRNWithCache() {
	s.withCache()

	s.Run("empty directory result falls back to cache", func() {
		cached := &models.CachedCase{ID: domain.NewCaseID(), UPRN: 10, CaseType: models.CaseTypeHH, Region: "E"}
		s.mockDirectory.EXPECT().GetCasesByUPRN(s.ctx, domain.UPRN(10), false).Return([]models.Case{}, nil)
		s.mockCache.EXPECT().GetByUPRN(s.ctx, domain.UPRN(10)).Return(cached, nil)

		dtos, err := s.service.GetCaseByUPRN(s.ctx, 10, false)
		s.Require().NoError(err)
		s.Require().Len(dtos, 1)
		s.Equal(cached.ID, dtos[0].ID)
	})

	s.Run("multiple cached skeletons is a system error", func() {
		s.mockDirectory.EXPECT().GetCasesByUPRN(s.ctx, domain.UPRN(11), false).Return([]models.Case{}, nil)
		s.mockCache.EXPECT().GetByUPRN(s.ctx, domain.UPRN(11)).
			Return(nil, dErrors.New(dErrors.CodeInternal, "More than one cached skeleton case for UPRN: 11"))

		_, err := s.service.GetCaseByUPRN(s.ctx, 11, false)
		s.requireCode(err, dErrors.CodeInternal)
	})
}

func (s *ServiceSuite) TestGetCaseByReference() {
	s.Run("returns case", func() {
		c := s.newCase(models.CaseTypeCE)
		s.mockDirectory.EXPECT().GetCaseByRef(s.ctx, c.CaseRef, false).Return(c, nil)

		dto, err := s.service.GetCaseByReference(s.ctx, c.CaseRef, false)
		s.Require().NoError(err)
		s.Equal("1000000017", dto.CaseRef)
		s.Equal([]models.DeliveryChannel{models.DeliveryChannelPost, models.DeliveryChannelSMS}, dto.AllowedDeliveryChannels)
	})

	s.Run("household individual is forbidden", func() {
		c := s.newCase(models.CaseTypeHI)
		s.mockDirectory.EXPECT().GetCaseByRef(s.ctx, c.CaseRef, true).Return(c, nil)

		_, err := s.service.GetCaseByReference(s.ctx, c.CaseRef, true)
		s.requireCode(err, dErrors.CodeForbidden)
	})

	s.Run("not found", func() {
		s.mockDirectory.EXPECT().GetCaseByRef(s.ctx, domain.CaseRef(5), false).Return(nil, s.notFound())

		_, err := s.service.GetCaseByReference(s.ctx, 5, false)
		s.requireCode(err, dErrors.CodeNotFound)
	})
}
