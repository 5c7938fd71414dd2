// Package constants holds provider names and fixed identifiers shared across layers.
package constants

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Object storage providers
const (
	StorageProviderFirebase = "firebase"
	StorageProviderMinio    = "minio"
	StorageProviderBlob     = "blob"
)

// Email providers
const (
	MailProviderMailjet  = "mailjet"
	MailProviderSendGrid = "sendgrid"
	MailProviderNoop     = "noop"
)

// Firestore collections
const (
	UsersCollection    = "users"
	ProductsCollection = "products"
)

// DefaultProfileImageName is used when an upload arrives without a file name.
const DefaultProfileImageName = "profile.jpg"

// EnvDevelop is the env.env value of local setups.
const EnvDevelop = "development"
