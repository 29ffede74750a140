// Package domain holds the entities of the civic platform: digital identities,
// identity batches and visitor feedback. The types carry no infrastructure
// concerns so storage, services and transport can share them.
package domain
