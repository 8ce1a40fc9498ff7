package utils

import (
	"errors"
	"fmt"
	"io"
	"medicare-portal/internal/pkg/constvars"
	"medicare-portal/internal/pkg/dto/requests"
	"net/http"
	"slices"
)

var allowedAvatarTypes = []string{
	constvars.MIMEImageJPEG,
	constvars.MIMEImagePNG,
	constvars.MIMEImageWEBP,
}

// BuildUpdateMemberRequest reads the profile fields of a multipart form. The
// form must already be parsed.
func BuildUpdateMemberRequest(r *http.Request) *requests.UpdateMember {
	return &requests.UpdateMember{
		MemberNick:        r.FormValue("memberNick"),
		MemberPhone:       r.FormValue("memberPhone"),
		MemberFullName:    r.FormValue("memberFullName"),
		MemberAddress:     r.FormValue("memberAddress"),
		MemberDesc:        r.FormValue("memberDesc"),
		MemberGender:      r.FormValue("memberGender"),
		MemberDateOfBirth: r.FormValue("memberDateOfBirth"),
		MemberBloodGroup:  r.FormValue("memberBloodGroup"),
	}
}

// ReadAvatar returns the uploaded avatar, or nil when the form carries none.
// The content type is sniffed from the bytes, not taken from the client.
func ReadAvatar(r *http.Request, field string, maxBytes int64) (*requests.Avatar, error) {
	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	if header.Size > maxBytes {
		return nil, fmt.Errorf("avatar is %d bytes, limit is %d", header.Size, maxBytes)
	}

	data, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("avatar exceeds %d bytes", maxBytes)
	}

	contentType := http.DetectContentType(data)
	if !slices.Contains(allowedAvatarTypes, contentType) {
		return nil, fmt.Errorf("avatar content type %s is not allowed", contentType)
	}

	return &requests.Avatar{
		FileName:    header.Filename,
		ContentType: contentType,
		Size:        int64(len(data)),
		Data:        data,
	}, nil
}
