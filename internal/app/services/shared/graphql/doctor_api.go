package graphql

import (
	"context"
	"medicare-portal/internal/app/contracts"
	"medicare-portal/internal/app/models"
)

type doctorAPI struct {
	client *Client
}

func NewDoctorAPI(client *Client) contracts.DoctorAPI {
	return &doctorAPI{client: client}
}

func (d *doctorAPI) GetDoctors(ctx context.Context, inquiry *models.DoctorsInquiry) (*models.DoctorsPage, error) {
	var data struct {
		GetDoctors struct {
			List        []models.Doctor `json:"list"`
			MetaCounter []struct {
				Total int `json:"total"`
			} `json:"metaCounter"`
		} `json:"getDoctors"`
	}
	variables := map[string]interface{}{"input": inquiry}
	if err := d.client.Do(ctx, OperationGetDoctors, getDoctorsQuery, variables, "", &data); err != nil {
		return nil, err
	}

	page := &models.DoctorsPage{
		List: make([]models.Doctor, 0, len(data.GetDoctors.List)),
	}
	for _, doctor := range data.GetDoctors.List {
		page.List = append(page.List, doctor.WithDefaults())
	}
	if len(data.GetDoctors.MetaCounter) > 0 {
		page.Total = data.GetDoctors.MetaCounter[0].Total
	}
	return page, nil
}
