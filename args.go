package usegrantmcp

import "github.com/usegrant/usegrant-mcp/usegrant"

// Tool and prompt argument types. Path parameters come first; the rest of
// each Create*Args type is the request payload, copied field for field by
// its Request method.

// NoArgs is the input of tools that take no arguments.
type NoArgs struct{}

// ProviderIDArgs identifies a provider by its own ID.
type ProviderIDArgs struct {
	ID string `json:"id" jsonschema:"Provider ID"`
}

// ProviderArgs scopes a call to a provider.
type ProviderArgs struct {
	ProviderID string `json:"providerId" jsonschema:"Provider ID"`
}

// CreateClientArgs is the input of create_client.
type CreateClientArgs struct {
	ProviderID  string   `json:"providerId"            jsonschema:"Provider ID"`
	Name        string   `json:"name"                  jsonschema:"Human-readable client name"`
	Description string   `json:"description,omitempty" jsonschema:"Optional client description"`
	Scopes      []string `json:"scopes,omitempty"      jsonschema:"Scopes the client may request"`
}

// Request returns the payload without the path parameter.
func (a CreateClientArgs) Request() usegrant.CreateClientRequest {
	return usegrant.CreateClientRequest{
		Name:        a.Name,
		Description: a.Description,
		Scopes:      a.Scopes,
	}
}

// ClientArgs identifies a client under a provider.
type ClientArgs struct {
	ProviderID string `json:"providerId" jsonschema:"Provider ID"`
	ClientID   string `json:"clientId"   jsonschema:"Client ID"`
}

// CreateAccessTokenArgs is the input of create_access_token.
type CreateAccessTokenArgs struct {
	ProviderID string   `json:"providerId"          jsonschema:"Provider ID"`
	ClientID   string   `json:"clientId"            jsonschema:"Client ID"`
	Audience   string   `json:"audience,omitempty"  jsonschema:"Intended audience of the token"`
	Scopes     []string `json:"scopes,omitempty"    jsonschema:"Scopes to embed in the token"`
	ExpiresIn  int      `json:"expiresIn,omitempty" jsonschema:"Token lifetime in seconds"`
}

// Request returns the payload without the path parameters.
func (a CreateAccessTokenArgs) Request() usegrant.CreateTokenRequest {
	return usegrant.CreateTokenRequest{
		Audience:  a.Audience,
		Scopes:    a.Scopes,
		ExpiresIn: a.ExpiresIn,
	}
}

// CreateDomainArgs is the input of create_domain.
type CreateDomainArgs struct {
	ProviderID string `json:"providerId" jsonschema:"Provider ID"`
	Domain     string `json:"domain"     jsonschema:"Fully qualified domain name"`
}

// Request returns the payload without the path parameter.
func (a CreateDomainArgs) Request() usegrant.CreateDomainRequest {
	return usegrant.CreateDomainRequest{Domain: a.Domain}
}

// DomainArgs identifies a domain under a provider.
type DomainArgs struct {
	ProviderID string `json:"providerId" jsonschema:"Provider ID"`
	DomainID   string `json:"domainId"   jsonschema:"Domain ID"`
}

// TenantIDArgs identifies a tenant by its own ID.
type TenantIDArgs struct {
	ID string `json:"id" jsonschema:"Tenant ID"`
}

// TenantArgs scopes a call to a tenant.
type TenantArgs struct {
	TenantID string `json:"tenantId" jsonschema:"Tenant ID"`
}

// CreateTenantProviderArgs is the input of create_tenant_provider.
type CreateTenantProviderArgs struct {
	TenantID    string `json:"tenantId"              jsonschema:"Tenant ID"`
	Name        string `json:"name"                  jsonschema:"Human-readable tenant provider name"`
	Description string `json:"description,omitempty" jsonschema:"Optional tenant provider description"`
	Issuer      string `json:"issuer,omitempty"      jsonschema:"Token issuer URL trusted by the tenant"`
}

// Request returns the payload without the path parameter.
func (a CreateTenantProviderArgs) Request() usegrant.CreateTenantProviderRequest {
	return usegrant.CreateTenantProviderRequest{
		Name:        a.Name,
		Description: a.Description,
		Issuer:      a.Issuer,
	}
}

// TenantProviderArgs identifies a provider under a tenant.
type TenantProviderArgs struct {
	TenantID   string `json:"tenantId"   jsonschema:"Tenant ID"`
	ProviderID string `json:"providerId" jsonschema:"Tenant provider ID"`
}

// CreateTenantProviderPolicyArgs is the input of create_tenant_provider_policy.
type CreateTenantProviderPolicyArgs struct {
	TenantID    string   `json:"tenantId"              jsonschema:"Tenant ID"`
	ProviderID  string   `json:"providerId"            jsonschema:"Tenant provider ID"`
	Name        string   `json:"name"                  jsonschema:"Human-readable policy name"`
	Description string   `json:"description,omitempty" jsonschema:"Optional policy description"`
	ClientID    string   `json:"clientId,omitempty"    jsonschema:"Client the policy applies to"`
	Audience    string   `json:"audience,omitempty"    jsonschema:"Audience the token must carry"`
	Scopes      []string `json:"scopes,omitempty"      jsonschema:"Scopes granted by the policy"`
}

// Request returns the payload without the path parameters.
func (a CreateTenantProviderPolicyArgs) Request() usegrant.CreateTenantProviderPolicyRequest {
	return usegrant.CreateTenantProviderPolicyRequest{
		Name:        a.Name,
		Description: a.Description,
		ClientID:    a.ClientID,
		Audience:    a.Audience,
		Scopes:      a.Scopes,
	}
}

// TenantProviderPolicyArgs identifies a policy under a tenant provider.
type TenantProviderPolicyArgs struct {
	TenantID   string `json:"tenantId"   jsonschema:"Tenant ID"`
	ProviderID string `json:"providerId" jsonschema:"Tenant provider ID"`
	PolicyID   string `json:"policyId"   jsonschema:"Policy ID"`
}

// ValidateAccessTokenArgs is the input of the validate_access_token prompt.
type ValidateAccessTokenArgs struct {
	TenantID    string `json:"tenantId"    jsonschema:"Tenant ID"`
	AccessToken string `json:"accessToken" jsonschema:"Access token to validate"`
}
