package service

import (
	"context"

	"contactcentre/internal/cases/models"
	"contactcentre/internal/platform/privacy"
	"contactcentre/pkg/domain"
	dErrors "contactcentre/pkg/domain-errors"
	strutil "contactcentre/pkg/string"
)

const (
	msgNoCompatibleProduct = "compatible product cannot be found"
	msgHandDeliveryPostal  = "Postal fulfilments cannot be delivered to this respondent"
	msgIndividualNames     = "The fulfilment is for an individual so none of the following fields can be empty: 'title', 'forename' or 'surname'"
)

// FulfilmentRequestByPost requests a postal product for the case in req.
func (s *Service) FulfilmentRequestByPost(ctx context.Context, req *models.PostalFulfilmentRequest) (*models.ResponseDTO, error) {
	caseID, err := domain.ParseCaseID(req.CaseID)
	if err != nil {
		return nil, err
	}
	return s.buildAndPublish(ctx, caseID, req.FulfilmentCode, models.DeliveryChannelPost, req.Contact())
}

// FulfilmentRequestBySMS requests an SMS product for the case in req.
func (s *Service) FulfilmentRequestBySMS(ctx context.Context, req *models.SMSFulfilmentRequest) (*models.ResponseDTO, error) {
	caseID, err := domain.ParseCaseID(req.CaseID)
	if err != nil {
		return nil, err
	}
	return s.buildAndPublish(ctx, caseID, req.FulfilmentCode, models.DeliveryChannelSMS, req.Contact())
}

// buildAndPublish is the one path every case-bound fulfilment takes.
func (s *Service) buildAndPublish(ctx context.Context, caseID domain.CaseID, code string, channel models.DeliveryChannel, contact models.Contact) (*models.ResponseDTO, error) {
	ctx, now := pinTime(ctx)
	c, err := s.fetchCaseForUpdate(ctx, caseID)
	if err != nil {
		return nil, err
	}

	region, ok := models.ParseRegion(c.RegionCode)
	if !ok {
		return nil, dErrors.New(dErrors.CodeInternal, "case has no valid region code: "+caseID.String())
	}
	product, err := s.findProduct(ctx, code, channel, region)
	if err != nil {
		return nil, err
	}

	if channel == models.DeliveryChannelPost {
		if c.HandDelivery {
			return nil, dErrors.New(dErrors.CodeBadRequest, msgHandDeliveryPostal)
		}
		if err := checkIndividualContact(product, contact); err != nil {
			return nil, err
		}
	}

	fr := models.FulfilmentRequest{
		FulfilmentCode: product.FulfilmentCode,
		CaseID:         c.ID,
		Address:        c.Address,
		Contact:        contact,
	}
	if c.CaseType == models.CaseTypeHH && product.Individual {
		individualID := domain.NewCaseID()
		fr.IndividualCaseID = &individualID
	}

	if _, err := s.publish(ctx, models.EventFulfilmentRequested, models.FulfilmentRequestedPayload{FulfilmentRequest: fr}); err != nil {
		return nil, err
	}
	s.metrics.RecordFulfilment(string(channel), fr.IndividualCaseID != nil)
	s.logger.InfoContext(ctx, "fulfilment requested",
		"case_id", caseID.String(),
		"fulfilment_code", product.FulfilmentCode,
		"channel", channel,
		"tel_no", privacy.MaskTelNo(contact.TelNo),
		"individual_case_minted", fr.IndividualCaseID != nil,
	)

	return &models.ResponseDTO{ID: caseID.String(), DateTime: now}, nil
}

// UnresolvedFulfilmentByPost posts a product to an operator-supplied address
// when the caller's case could not be identified.
func (s *Service) UnresolvedFulfilmentByPost(ctx context.Context, req *models.UnresolvedPostalFulfilmentRequest) (*models.ResponseDTO, error) {
	contact := req.Contact()
	product, err := s.findProduct(ctx, req.FulfilmentCode, models.DeliveryChannelPost, models.Region(req.Region))
	if err != nil {
		return nil, err
	}
	if err := checkIndividualContact(product, contact); err != nil {
		return nil, err
	}
	fr := models.FulfilmentRequest{
		FulfilmentCode: product.FulfilmentCode,
		CaseID:         domain.UnknownCaseID,
		Address:        req.Address(),
		Contact:        contact,
	}
	return s.publishUnresolved(ctx, fr, models.DeliveryChannelPost)
}

// UnresolvedFulfilmentBySMS texts a product without an identified case.
func (s *Service) UnresolvedFulfilmentBySMS(ctx context.Context, req *models.UnresolvedSMSFulfilmentRequest) (*models.ResponseDTO, error) {
	product, err := s.findProduct(ctx, req.FulfilmentCode, models.DeliveryChannelSMS, models.Region(req.Region))
	if err != nil {
		return nil, err
	}
	fr := models.FulfilmentRequest{
		FulfilmentCode: product.FulfilmentCode,
		CaseID:         domain.UnknownCaseID,
		Address:        models.Address{Region: req.Region},
		Contact:        models.Contact{TelNo: req.TelNo},
	}
	return s.publishUnresolved(ctx, fr, models.DeliveryChannelSMS)
}

func (s *Service) publishUnresolved(ctx context.Context, fr models.FulfilmentRequest, channel models.DeliveryChannel) (*models.ResponseDTO, error) {
	ctx, now := pinTime(ctx)
	if _, err := s.publish(ctx, models.EventFulfilmentRequested, models.FulfilmentRequestedPayload{FulfilmentRequest: fr}); err != nil {
		return nil, err
	}
	s.metrics.RecordFulfilment(string(channel), false)
	s.logger.InfoContext(ctx, "unresolved fulfilment requested",
		"fulfilment_code", fr.FulfilmentCode,
		"channel", channel,
		"tel_no", privacy.MaskTelNo(fr.Contact.TelNo),
	)
	return &models.ResponseDTO{ID: domain.UnknownCaseLiteral, DateTime: now}, nil
}

// ListFulfilments lists products orderable through the contact centre.
// Empty caseType or region match every product.
func (s *Service) ListFulfilments(ctx context.Context, caseType models.CaseType, region models.Region) ([]models.FulfilmentDTO, error) {
	products, err := s.catalog.Search(ctx, models.ProductCriteria{
		RequestChannel: models.RequestChannelContactCentre,
		CaseType:       caseType,
		Region:         region,
	})
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "product search failed")
	}
	out := make([]models.FulfilmentDTO, 0, len(products))
	for _, p := range products {
		out = append(out, models.NewFulfilmentDTO(p))
	}
	return out, nil
}

// findProduct returns the first catalog match. Search order decides ties.
func (s *Service) findProduct(ctx context.Context, code string, channel models.DeliveryChannel, region models.Region) (models.Product, error) {
	products, err := s.catalog.Search(ctx, models.ProductCriteria{
		FulfilmentCode:  code,
		DeliveryChannel: channel,
		Region:          region,
		RequestChannel:  models.RequestChannelContactCentre,
	})
	if err != nil {
		return models.Product{}, dErrors.Wrap(err, dErrors.CodeInternal, "product search failed")
	}
	if len(products) == 0 {
		s.logger.WarnContext(ctx, "no compatible product",
			"fulfilment_code", code,
			"channel", channel,
			"region", region,
		)
		return models.Product{}, dErrors.New(dErrors.CodeBadRequest, msgNoCompatibleProduct)
	}
	return products[0], nil
}

func checkIndividualContact(product models.Product, contact models.Contact) error {
	if !product.Individual {
		return nil
	}
	if strutil.IsBlank(contact.Title) || strutil.IsBlank(contact.Forename) || strutil.IsBlank(contact.Surname) {
		return dErrors.New(dErrors.CodeBadRequest, msgIndividualNames)
	}
	return nil
}
