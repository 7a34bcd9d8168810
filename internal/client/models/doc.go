// Package models defines the client-side data model of the community screen:
// feed posts, the pending image selection and the upload payload.
package models
