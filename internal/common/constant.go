// Package common contains constants shared by the client packages.
package common

const (
	// IdentityHeaderName carries the installation identity on feed requests.
	IdentityHeaderName = "X-User-Id"

	// MetadataKeyUserID is the metadata key under which the identity is persisted.
	MetadataKeyUserID = "userId"

	// UserPhotosPath is the feed and upload endpoint under the base URL.
	UserPhotosPath = "/api/userphotos"
)
