package firebase

import (
	"context"
	"time"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/m-mizutani/goerr/v2"
	"github.com/michaelDinelle/FireBaseExportScript/internal/model"
	"google.golang.org/api/iterator"
)

// authClient adapts the Admin SDK auth client to the identity service
// capability.
type authClient struct {
	client *fbauth.Client
}

// ListUsers returns one page of user records and the continuation token
// for the next page.
func (c *authClient) ListUsers(ctx context.Context, pageSize int, pageToken string) ([]model.User, string, error) {
	it := c.client.Users(ctx, "")
	pager := iterator.NewPager(it, pageSize, pageToken)

	var page []*fbauth.ExportedUserRecord
	nextToken, err := pager.NextPage(&page)
	if err != nil {
		return nil, "", goerr.Wrap(err, "failed to list users", goerr.V("pageToken", pageToken))
	}

	users := make([]model.User, 0, len(page))
	for _, record := range page {
		users = append(users, convertUser(record.UserRecord))
	}
	return users, nextToken, nil
}

// GetUserMFAFactors fetches the enrolled multi-factor entries of one user.
func (c *authClient) GetUserMFAFactors(ctx context.Context, uid string) ([]model.MFAFactor, error) {
	record, err := c.client.GetUser(ctx, uid)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get user", goerr.V("uid", uid))
	}
	if record.MultiFactor == nil {
		return nil, nil
	}

	factors := make([]model.MFAFactor, 0, len(record.MultiFactor.EnrolledFactors))
	for _, factor := range record.MultiFactor.EnrolledFactors {
		f := model.MFAFactor{
			UID:         factor.UID,
			DisplayName: factor.DisplayName,
			FactorID:    factor.FactorID,
		}
		if factor.EnrollmentTimestamp != 0 {
			f.EnrollmentTime = time.UnixMilli(factor.EnrollmentTimestamp).UTC().Format(time.RFC3339)
		}
		factors = append(factors, f)
	}
	return factors, nil
}

func convertUser(record *fbauth.UserRecord) model.User {
	user := model.User{
		UID:           record.UID,
		Email:         record.Email,
		EmailVerified: record.EmailVerified,
		DisplayName:   record.DisplayName,
		PhotoURL:      record.PhotoURL,
		PhoneNumber:   record.PhoneNumber,
		Disabled:      record.Disabled,
		CustomClaims:  record.CustomClaims,
	}
	if user.CustomClaims == nil {
		user.CustomClaims = map[string]any{}
	}
	if record.UserMetadata != nil {
		user.CreationTimestamp = record.UserMetadata.CreationTimestamp
		user.LastSignInTimestamp = record.UserMetadata.LastLogInTimestamp
	}

	user.ProviderData = make([]model.UserProvider, 0, len(record.ProviderUserInfo))
	for _, provider := range record.ProviderUserInfo {
		user.ProviderData = append(user.ProviderData, model.UserProvider{
			ProviderID:  provider.ProviderID,
			UID:         provider.UID,
			Email:       provider.Email,
			DisplayName: provider.DisplayName,
			PhotoURL:    provider.PhotoURL,
		})
	}
	return user
}
