package usegrantmcp

// catalog binds every tool and prompt to one UseGrant API call.
type catalog struct {
	api API
}

// catalogOptions returns the registration table in catalog order.
func catalogOptions(api API) []Option {
	c := catalog{api: api}
	return []Option{
		WithTool("list_providers", "List all providers", c.listProviders),
		WithTool("create_provider", "Create a new provider", c.createProvider),
		WithTool("get_provider", "Get a provider by ID", c.getProvider),
		WithTool("delete_provider", "Delete a provider", c.deleteProvider),

		WithTool("list_clients", "List all clients", c.listClients),
		WithTool("create_client", "Create a new client for a provider", c.createClient),
		WithTool("get_client", "Get client details by provider and client ID", c.getClient),
		WithTool("delete_client", "Delete a client from a provider", c.deleteClient),

		WithTool("create_access_token", "Create a new access token for a client", c.createAccessToken),

		WithTool("list_domains", "List all domains for a provider", c.listDomains),
		WithTool("create_domain", "Add a domain to a provider", c.createDomain),
		WithTool("get_domain", "Get a provider domain by ID", c.getDomain),
		WithTool("delete_domain", "Delete a domain from a provider", c.deleteDomain),

		WithTool("list_tenants", "List all tenants", c.listTenants),
		WithTool("create_tenant", "Create a new tenant", c.createTenant),
		WithTool("get_tenant", "Get a tenant by ID", c.getTenant),
		WithTool("delete_tenant", "Delete a tenant", c.deleteTenant),

		WithTool("list_tenant_providers", "List all providers for a tenant", c.listTenantProviders),
		WithTool("create_tenant_provider", "Create a new provider for a tenant", c.createTenantProvider),
		WithTool("get_tenant_provider", "Get a provider for a tenant", c.getTenantProvider),
		WithTool("delete_tenant_provider", "Delete a provider for a tenant", c.deleteTenantProvider),

		WithTool("list_tenant_provider_policies", "List all policies for a tenant provider", c.listTenantProviderPolicies),
		WithTool("create_tenant_provider_policy", "Create a new policy for a tenant provider", c.createTenantProviderPolicy),
		WithTool("get_tenant_provider_policy", "Get a policy for a tenant provider", c.getTenantProviderPolicy),
		WithTool("delete_tenant_provider_policy", "Delete a policy from a tenant provider", c.deleteTenantProviderPolicy),

		WithPrompt("validate_access_token", "Validate an access token", c.validateAccessToken),
	}
}
