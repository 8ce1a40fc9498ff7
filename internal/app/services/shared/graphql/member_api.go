package graphql

import (
	"context"
	"medicare-portal/internal/app/contracts"
	"medicare-portal/internal/app/models"
	"medicare-portal/internal/pkg/dto/requests"
)

type memberAPI struct {
	client *Client
}

func NewMemberAPI(client *Client) contracts.MemberAPI {
	return &memberAPI{client: client}
}

func (m *memberAPI) UpdateMember(ctx context.Context, accessToken string, input *requests.UpdateMember) (*models.AuthPayload, error) {
	var data struct {
		UpdateMember models.AuthPayload `json:"updateMember"`
	}
	variables := map[string]interface{}{"input": input}
	if err := m.client.Do(ctx, OperationUpdateMember, updateMemberMutation, variables, accessToken, &data); err != nil {
		return nil, err
	}
	return &data.UpdateMember, nil
}
