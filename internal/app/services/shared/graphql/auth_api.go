package graphql

import (
	"context"
	"medicare-portal/internal/app/contracts"
	"medicare-portal/internal/app/models"
	"medicare-portal/internal/pkg/constvars"
	"medicare-portal/internal/pkg/dto/requests"
)

type authAPI struct {
	client *Client
}

func NewAuthAPI(client *Client) contracts.AuthAPI {
	return &authAPI{client: client}
}

func (a *authAPI) LoginMember(ctx context.Context, nick, password string) (*models.AuthPayload, error) {
	var data struct {
		Login models.AuthPayload `json:"login"`
	}
	variables := map[string]interface{}{
		"input": map[string]interface{}{
			"memberNick":     nick,
			"memberPassword": password,
		},
	}
	if err := a.client.Do(ctx, OperationLogin, loginMutation, variables, "", &data); err != nil {
		return nil, err
	}
	return &data.Login, nil
}

func (a *authAPI) LoginDoctor(ctx context.Context, nick, password string) (*models.AuthPayload, error) {
	var data struct {
		LoginDoctor models.AuthPayload `json:"loginDoctor"`
	}
	variables := map[string]interface{}{
		"input": map[string]interface{}{
			"doctorNick":     nick,
			"doctorPassword": password,
		},
	}
	if err := a.client.Do(ctx, OperationLoginDoctor, loginDoctorMutation, variables, "", &data); err != nil {
		return nil, err
	}
	return &data.LoginDoctor, nil
}

func (a *authAPI) SignupMember(ctx context.Context, input *requests.SignupMember) (*models.AuthPayload, error) {
	var data struct {
		Signup models.AuthPayload `json:"signup"`
	}
	memberInput := map[string]interface{}{
		"memberNick":     input.MemberNick,
		"memberPassword": input.MemberPassword,
		"memberPhone":    input.MemberPhone,
		"memberType":     constvars.MemberTypePatient,
	}
	if input.MemberGender != "" {
		memberInput["memberGender"] = input.MemberGender
	}
	variables := map[string]interface{}{"input": memberInput}
	if err := a.client.Do(ctx, OperationSignup, signupMutation, variables, "", &data); err != nil {
		return nil, err
	}
	return &data.Signup, nil
}

func (a *authAPI) SignupDoctor(ctx context.Context, input *requests.SignupDoctor) (*models.AuthPayload, error) {
	var data struct {
		SignupDoctor models.AuthPayload `json:"signupDoctor"`
	}
	variables := map[string]interface{}{"input": input}
	if err := a.client.Do(ctx, OperationSignupDoctor, signupDoctorMutation, variables, "", &data); err != nil {
		return nil, err
	}
	return &data.SignupDoctor, nil
}

func (a *authAPI) ForgotPassword(ctx context.Context, nick, phone string) (bool, error) {
	var data struct {
		ForgotPassword bool `json:"forgotPassword"`
	}
	variables := map[string]interface{}{
		"input": map[string]interface{}{
			"memberNick":  nick,
			"memberPhone": phone,
		},
	}
	if err := a.client.Do(ctx, OperationForgotPassword, forgotPasswordMutation, variables, "", &data); err != nil {
		return false, err
	}
	return data.ForgotPassword, nil
}

func (a *authAPI) ResetPassword(ctx context.Context, input *requests.ResetPassword) (bool, error) {
	var data struct {
		ResetPassword bool `json:"resetPassword"`
	}
	variables := map[string]interface{}{"input": input}
	if err := a.client.Do(ctx, OperationResetPassword, resetPasswordMutation, variables, "", &data); err != nil {
		return false, err
	}
	return data.ResetPassword, nil
}
