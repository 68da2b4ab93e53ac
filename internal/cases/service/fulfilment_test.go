package service

import (
	"context"
	"errors"

	"go.uber.org/mock/gomock"

	"contactcentre/internal/cases/models"
	"contactcentre/pkg/domain"
	dErrors "contactcentre/pkg/domain-errors"
	"contactcentre/pkg/testutil"
)

func (s *ServiceSuite) product(code string, channel models.DeliveryChannel, individual bool) models.Product {
	return models.Product{
		FulfilmentCode:  code,
		DeliveryChannel: channel,
		Regions:         []models.Region{models.RegionE},
		RequestChannels: []models.RequestChannel{models.RequestChannelContactCentre},
		Individual:      individual,
	}
}

func (s *ServiceSuite) expectSearch(code string, channel models.DeliveryChannel, region models.Region, products ...models.Product) {
	s.mockCatalog.EXPECT().Search(s.ctx, models.ProductCriteria{
		FulfilmentCode:  code,
		DeliveryChannel: channel,
		Region:          region,
		RequestChannel:  models.RequestChannelContactCentre,
	}).Return(products, nil)
}

// capturePublish records the payload of the next publish of eventType.
func (s *ServiceSuite) capturePublish(eventType models.EventType, out *any) {
	s.mockPublisher.EXPECT().
		Publish(gomock.Any(), eventType, models.EventSource, models.EventChannel, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.EventType, _, _ string, payload any) (domain.TransactionID, error) {
			*out = payload
			return domain.NewTransactionID(), nil
		})
}

func (s *ServiceSuite) TestFulfilmentRequestByPost() {
	s.Run("publishes with address snapshot and no individual id", func() {
		c := s.newCase(models.CaseTypeHH)
		s.mockDirectory.EXPECT().GetCaseByID(s.ctx, c.ID, false).Return(c, nil)
		s.expectSearch("P_OR_H1", models.DeliveryChannelPost, models.RegionE, s.product("P_OR_H1", models.DeliveryChannelPost, false))
		var payload any
		s.capturePublish(models.EventFulfilmentRequested, &payload)

		ack, err := s.service.FulfilmentRequestByPost(s.ctx, &models.PostalFulfilmentRequest{
			CaseID:         c.ID.String(),
			FulfilmentCode: "P_OR_H1",
		})
		s.Require().NoError(err)
		s.Equal(c.ID.String(), ack.ID)
		s.Equal(fixedNow, ack.DateTime)

		fr := payload.(models.FulfilmentRequestedPayload).FulfilmentRequest
		s.Equal(c.ID, fr.CaseID)
		s.Nil(fr.IndividualCaseID)
		s.Equal(c.Address, fr.Address)
	})

	s.Run("first product wins when several match", func() {
		c := s.newCase(models.CaseTypeHH)
		s.mockDirectory.EXPECT().GetCaseByID(s.ctx, c.ID, false).Return(c, nil)
		first := s.product("P_OR_H1", models.DeliveryChannelPost, false)
		first.Description = "first"
		second := s.product("P_OR_H1", models.DeliveryChannelPost, true)
		s.expectSearch("P_OR_H1", models.DeliveryChannelPost, models.RegionE, first, second)
		var payload any
		s.capturePublish(models.EventFulfilmentRequested, &payload)

		_, err := s.service.FulfilmentRequestByPost(s.ctx, &models.PostalFulfilmentRequest{CaseID: c.ID.String(), FulfilmentCode: "P_OR_H1"})
		s.Require().NoError(err)
		s.Nil(payload.(models.FulfilmentRequestedPayload).FulfilmentRequest.IndividualCaseID)
	})

	s.Run("no compatible product", func() {
		c := s.newCase(models.CaseTypeHH)
		s.mockDirectory.EXPECT().GetCaseByID(s.ctx, c.ID, false).Return(c, nil)
		s.expectSearch("NOPE", models.DeliveryChannelPost, models.RegionE)

		_, err := s.service.FulfilmentRequestByPost(s.ctx, &models.PostalFulfilmentRequest{CaseID: c.ID.String(), FulfilmentCode: "NOPE"})
		s.requireCode(err, dErrors.CodeBadRequest)
		s.Equal("compatible product cannot be found", err.Error())
	})

	s.Run("hand-delivery case cannot receive post", func() {
		c := s.newCase(models.CaseTypeSPG)
		c.HandDelivery = true
		s.mockDirectory.EXPECT().GetCaseByID(s.ctx, c.ID, false).Return(c, nil)
		s.expectSearch("P_OR_H1", models.DeliveryChannelPost, models.RegionE, s.product("P_OR_H1", models.DeliveryChannelPost, false))

		_, err := s.service.FulfilmentRequestByPost(s.ctx, &models.PostalFulfilmentRequest{CaseID: c.ID.String(), FulfilmentCode: "P_OR_H1"})
		s.requireCode(err, dErrors.CodeBadRequest)
	})

	s.Run("individual product with blank surname names all three fields", func() {
		c := s.newCase(models.CaseTypeHH)
		s.mockDirectory.EXPECT().GetCaseByID(s.ctx, c.ID, false).Return(c, nil)
		s.expectSearch("P_OR_I1", models.DeliveryChannelPost, models.RegionE, s.product("P_OR_I1", models.DeliveryChannelPost, true))

		_, err := s.service.FulfilmentRequestByPost(s.ctx, &models.PostalFulfilmentRequest{
			CaseID:         c.ID.String(),
			Title:          "Mx",
			Forename:       "Sam",
			Surname:        "  ",
			FulfilmentCode: "P_OR_I1",
		})
		s.requireCode(err, dErrors.CodeBadRequest)
		s.Contains(err.Error(), "'title'")
		s.Contains(err.Error(), "'forename'")
		s.Contains(err.Error(), "'surname'")
	})

	s.Run("household individual product mints a subsidiary case id", func() {
		c := s.newCase(models.CaseTypeHH)
		s.mockDirectory.EXPECT().GetCaseByID(s.ctx, c.ID, false).Return(c, nil)
		s.expectSearch("P_OR_I1", models.DeliveryChannelPost, models.RegionE, s.product("P_OR_I1", models.DeliveryChannelPost, true))
		var payload any
		s.capturePublish(models.EventFulfilmentRequested, &payload)

		_, err := s.service.FulfilmentRequestByPost(s.ctx, &models.PostalFulfilmentRequest{
			CaseID:         c.ID.String(),
			Title:          "Mx",
			Forename:       "Sam",
			Surname:        "Jones",
			FulfilmentCode: "P_OR_I1",
		})
		s.Require().NoError(err)
		fr := payload.(models.FulfilmentRequestedPayload).FulfilmentRequest
		s.Require().NotNil(fr.IndividualCaseID)
		s.NotEqual(c.ID, *fr.IndividualCaseID)
		s.Equal("Jones", fr.Contact.Surname)
	})

	s.Run("directory not found is a system error", func() {
		id := domain.NewCaseID()
		s.mockDirectory.EXPECT().GetCaseByID(s.ctx, id, false).Return(nil, s.notFound())

		_, err := s.service.FulfilmentRequestByPost(s.ctx, &models.PostalFulfilmentRequest{CaseID: id.String(), FulfilmentCode: "P_OR_H1"})
		s.requireCode(err, dErrors.CodeInternal)
	})

	s.Run("publish failure surfaces", func() {
		c := s.newCase(models.CaseTypeHH)
		s.mockDirectory.EXPECT().GetCaseByID(s.ctx, c.ID, false).Return(c, nil)
		s.expectSearch("P_OR_H1", models.DeliveryChannelPost, models.RegionE, s.product("P_OR_H1", models.DeliveryChannelPost, false))
		s.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(domain.TransactionID{}, errors.New("broker down"))

		_, err := s.service.FulfilmentRequestByPost(s.ctx, &models.PostalFulfilmentRequest{CaseID: c.ID.String(), FulfilmentCode: "P_OR_H1"})
		s.requireCode(err, dErrors.CodeInternal)
	})
}

func (s *ServiceSuite) TestFulfilmentRequestBySMS() {
	s.Run("individual product for non-household never mints", func() {
		for _, ct := range []models.CaseType{models.CaseTypeSPG, models.CaseTypeCE} {
			c := s.newCase(ct)
			s.mockDirectory.EXPECT().GetCaseByID(s.ctx, c.ID, false).Return(c, nil)
			s.expectSearch("UACIT1", models.DeliveryChannelSMS, models.RegionE, s.product("UACIT1", models.DeliveryChannelSMS, true))
			var payload any
			s.capturePublish(models.EventFulfilmentRequested, &payload)

			_, err := s.service.FulfilmentRequestBySMS(s.ctx, &models.SMSFulfilmentRequest{
				CaseID:         c.ID.String(),
				TelNo:          "+447400123456",
				FulfilmentCode: "UACIT1",
			})
			s.Require().NoError(err)
			fr := payload.(models.FulfilmentRequestedPayload).FulfilmentRequest
			s.Nil(fr.IndividualCaseID, "case type %s", ct)
			s.Equal("+447400123456", fr.Contact.TelNo)
		}
	})

	s.Run("hand-delivery is fine by SMS", func() {
		c := testutil.NewCaseBuilder().WithType(models.CaseTypeSPG).HandDelivered().Build()
		s.mockDirectory.EXPECT().GetCaseByID(s.ctx, c.ID, false).Return(c, nil)
		s.expectSearch("UACHHT1", models.DeliveryChannelSMS, models.RegionE, s.product("UACHHT1", models.DeliveryChannelSMS, false))
		s.expectPublish(models.EventFulfilmentRequested)

		_, err := s.service.FulfilmentRequestBySMS(s.ctx, &models.SMSFulfilmentRequest{CaseID: c.ID.String(), TelNo: "+447400123456", FulfilmentCode: "UACHHT1"})
		s.Require().NoError(err)
	})

	s.Run("region from welsh region code", func() {
		c := testutil.NewCaseBuilder().WithRegionCode("W92000004").Build()
		s.mockDirectory.EXPECT().GetCaseByID(s.ctx, c.ID, false).Return(c, nil)
		s.expectSearch("UACHHT2W", models.DeliveryChannelSMS, models.RegionW)

		_, err := s.service.FulfilmentRequestBySMS(s.ctx, &models.SMSFulfilmentRequest{CaseID: c.ID.String(), TelNo: "+447400123456", FulfilmentCode: "UACHHT2W"})
		s.requireCode(err, dErrors.CodeBadRequest)
	})
}

func (s *ServiceSuite) TestUnresolvedFulfilment() {
	s.Run("post uses request region and unknown case id", func() {
		s.expectSearch("P_OR_H1", models.DeliveryChannelPost, models.RegionN, s.product("P_OR_H1", models.DeliveryChannelPost, false))
		var payload any
		s.capturePublish(models.EventFulfilmentRequested, &payload)

		ack, err := s.service.UnresolvedFulfilmentByPost(s.ctx, &models.UnresolvedPostalFulfilmentRequest{
			AddressLine1:   "3 High Street",
			TownName:       "Belfast",
			Postcode:       "BT1 1AA",
			Region:         "N",
			FulfilmentCode: "P_OR_H1",
		})
		s.Require().NoError(err)
		s.Equal(domain.UnknownCaseLiteral, ack.ID)
		fr := payload.(models.FulfilmentRequestedPayload).FulfilmentRequest
		s.Equal(domain.UnknownCaseID, fr.CaseID)
		s.Nil(fr.IndividualCaseID)
		s.Equal("Belfast", fr.Address.TownName)
	})

	s.Run("individual post still needs names", func() {
		s.expectSearch("P_OR_I1", models.DeliveryChannelPost, models.RegionE, s.product("P_OR_I1", models.DeliveryChannelPost, true))

		_, err := s.service.UnresolvedFulfilmentByPost(s.ctx, &models.UnresolvedPostalFulfilmentRequest{
			AddressLine1: "1 Road", TownName: "Town", Postcode: "EX1 1AA", Region: "E", FulfilmentCode: "P_OR_I1",
		})
		s.requireCode(err, dErrors.CodeBadRequest)
	})

	s.Run("sms without matching product", func() {
		s.expectSearch("UACHHT1", models.DeliveryChannelSMS, models.RegionE)

		_, err := s.service.UnresolvedFulfilmentBySMS(s.ctx, &models.UnresolvedSMSFulfilmentRequest{
			TelNo: "+447400123456", Region: "E", FulfilmentCode: "UACHHT1",
		})
		s.requireCode(err, dErrors.CodeBadRequest)
	})
}

func (s *ServiceSuite) TestListFulfilments() {
	s.mockCatalog.EXPECT().Search(s.ctx, models.ProductCriteria{
		RequestChannel: models.RequestChannelContactCentre,
		CaseType:       models.CaseTypeHH,
	}).Return([]models.Product{s.product("P_OR_H1", models.DeliveryChannelPost, false)}, nil)

	out, err := s.service.ListFulfilments(s.ctx, models.CaseTypeHH, "")
	s.Require().NoError(err)
	s.Require().Len(out, 1)
	s.Equal("P_OR_H1", out[0].FulfilmentCode)
}
