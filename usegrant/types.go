package usegrant

import "encoding/json"

// Records keep the exact payload they were decoded from and encode back to
// it, so fields the typed view does not name (timestamps, metadata) are
// relayed unchanged. A record built in code has no payload and encodes its
// typed fields.

// Provider is an identity provider that issues client credentials.
type Provider struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`

	raw json.RawMessage
}

type providerFields Provider

func (p *Provider) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, (*providerFields)(p), &p.raw)
}

func (p Provider) MarshalJSON() ([]byte, error) {
	return marshalRecord(p.raw, providerFields(p))
}

// CreateProviderRequest is the payload for creating a provider.
type CreateProviderRequest struct {
	Name        string `json:"name"                  jsonschema:"Human-readable provider name"`
	Description string `json:"description,omitempty" jsonschema:"Optional provider description"`
}

// OAuthClient is a machine client registered under a provider.
type OAuthClient struct {
	ID          string   `json:"id,omitempty"`
	ProviderID  string   `json:"providerId,omitempty"`
	Name        string   `json:"name,omitempty"`
	Description string   `json:"description,omitempty"`
	Secret      string   `json:"secret,omitempty"`
	Scopes      []string `json:"scopes,omitempty"`

	raw json.RawMessage
}

type oauthClientFields OAuthClient

func (c *OAuthClient) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, (*oauthClientFields)(c), &c.raw)
}

func (c OAuthClient) MarshalJSON() ([]byte, error) {
	return marshalRecord(c.raw, oauthClientFields(c))
}

// CreateClientRequest is the payload for creating a client.
type CreateClientRequest struct {
	Name        string   `json:"name"                  jsonschema:"Human-readable client name"`
	Description string   `json:"description,omitempty" jsonschema:"Optional client description"`
	Scopes      []string `json:"scopes,omitempty"      jsonschema:"Scopes the client may request"`
}

// Domain is a custom domain attached to a provider.
type Domain struct {
	ID         string `json:"id,omitempty"`
	ProviderID string `json:"providerId,omitempty"`
	Domain     string `json:"domain,omitempty"`
	Verified   bool   `json:"verified,omitempty"`

	raw json.RawMessage
}

type domainFields Domain

func (d *Domain) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, (*domainFields)(d), &d.raw)
}

func (d Domain) MarshalJSON() ([]byte, error) {
	return marshalRecord(d.raw, domainFields(d))
}

// CreateDomainRequest is the payload for attaching a domain.
type CreateDomainRequest struct {
	Domain string `json:"domain" jsonschema:"Fully qualified domain name"`
}

// AccessToken is a credential issued for a client.
type AccessToken struct {
	AccessToken string `json:"accessToken,omitempty"`
	TokenType   string `json:"tokenType,omitempty"`
	ExpiresIn   int    `json:"expiresIn,omitempty"`
	Scope       string `json:"scope,omitempty"`

	raw json.RawMessage
}

type accessTokenFields AccessToken

func (t *AccessToken) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, (*accessTokenFields)(t), &t.raw)
}

func (t AccessToken) MarshalJSON() ([]byte, error) {
	return marshalRecord(t.raw, accessTokenFields(t))
}

// CreateTokenRequest is the payload for issuing an access token.
type CreateTokenRequest struct {
	Audience  string   `json:"audience,omitempty"  jsonschema:"Intended audience of the token"`
	Scopes    []string `json:"scopes,omitempty"    jsonschema:"Scopes to embed in the token"`
	ExpiresIn int      `json:"expiresIn,omitempty" jsonschema:"Token lifetime in seconds"`
}

// Tenant groups its own providers and policies.
type Tenant struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`

	raw json.RawMessage
}

type tenantFields Tenant

func (t *Tenant) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, (*tenantFields)(t), &t.raw)
}

func (t Tenant) MarshalJSON() ([]byte, error) {
	return marshalRecord(t.raw, tenantFields(t))
}

// CreateTenantRequest is the payload for creating a tenant.
type CreateTenantRequest struct {
	Name        string `json:"name"                  jsonschema:"Human-readable tenant name"`
	Description string `json:"description,omitempty" jsonschema:"Optional tenant description"`
}

// TenantProvider trusts a provider's tokens on behalf of a tenant.
type TenantProvider struct {
	ID          string `json:"id,omitempty"`
	TenantID    string `json:"tenantId,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Issuer      string `json:"issuer,omitempty"`

	raw json.RawMessage
}

type tenantProviderFields TenantProvider

func (p *TenantProvider) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, (*tenantProviderFields)(p), &p.raw)
}

func (p TenantProvider) MarshalJSON() ([]byte, error) {
	return marshalRecord(p.raw, tenantProviderFields(p))
}

// CreateTenantProviderRequest is the payload for creating a tenant provider.
type CreateTenantProviderRequest struct {
	Name        string `json:"name"                  jsonschema:"Human-readable tenant provider name"`
	Description string `json:"description,omitempty" jsonschema:"Optional tenant provider description"`
	Issuer      string `json:"issuer,omitempty"      jsonschema:"Token issuer URL trusted by the tenant"`
}

// TenantProviderPolicy is an access rule attached to a tenant provider.
type TenantProviderPolicy struct {
	ID               string   `json:"id,omitempty"`
	TenantID         string   `json:"tenantId,omitempty"`
	TenantProviderID string   `json:"tenantProviderId,omitempty"`
	Name             string   `json:"name,omitempty"`
	Description      string   `json:"description,omitempty"`
	ClientID         string   `json:"clientId,omitempty"`
	Audience         string   `json:"audience,omitempty"`
	Scopes           []string `json:"scopes,omitempty"`

	raw json.RawMessage
}

type policyFields TenantProviderPolicy

func (p *TenantProviderPolicy) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, (*policyFields)(p), &p.raw)
}

func (p TenantProviderPolicy) MarshalJSON() ([]byte, error) {
	return marshalRecord(p.raw, policyFields(p))
}

// CreateTenantProviderPolicyRequest is the payload for creating a policy.
type CreateTenantProviderPolicyRequest struct {
	Name        string   `json:"name"                  jsonschema:"Human-readable policy name"`
	Description string   `json:"description,omitempty" jsonschema:"Optional policy description"`
	ClientID    string   `json:"clientId,omitempty"    jsonschema:"Client the policy applies to"`
	Audience    string   `json:"audience,omitempty"    jsonschema:"Audience the token must carry"`
	Scopes      []string `json:"scopes,omitempty"      jsonschema:"Scopes granted by the policy"`
}

// TokenValidation is the outcome of validating an access token against a
// tenant.
type TokenValidation struct {
	Valid    bool           `json:"valid"`
	ClientID string         `json:"clientId,omitempty"`
	PolicyID string         `json:"policyId,omitempty"`
	Claims   map[string]any `json:"claims,omitempty"`

	raw json.RawMessage
}

type tokenValidationFields TokenValidation

func (v *TokenValidation) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, (*tokenValidationFields)(v), &v.raw)
}

func (v TokenValidation) MarshalJSON() ([]byte, error) {
	return marshalRecord(v.raw, tokenValidationFields(v))
}

type validateTokenRequest struct {
	AccessToken string `json:"accessToken"`
}

// unmarshalRecord fills the typed view and keeps a copy of data.
func unmarshalRecord[T any](data []byte, fields *T, raw *json.RawMessage) error {
	if err := json.Unmarshal(data, fields); err != nil {
		return err
	}
	*raw = append(json.RawMessage(nil), data...)
	return nil
}

func marshalRecord[T any](raw json.RawMessage, fields T) ([]byte, error) {
	if raw != nil {
		return raw, nil
	}
	return json.Marshal(fields)
}
