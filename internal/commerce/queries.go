package commerce

// Fixed GraphQL documents. Variant lists are capped at the option combinations
// a handcrafted catalog realistically carries.

const productFields = `
	id
	handle
	title
	description
	featuredImage { url }
	variants(first: 50) {
		edges {
			node {
				id
				title
				availableForSale
				price { amount currencyCode }
				selectedOptions { name value }
			}
		}
	}`

const queryProducts = `
query Products($first: Int!) {
	products(first: $first) {
		edges { node {` + productFields + `
		} }
	}
}`

const queryProductByHandle = `
query ProductByHandle($handle: String!) {
	productByHandle(handle: $handle) {` + productFields + `
	}
}`

const mutationCheckoutCreate = `
mutation CheckoutCreate($input: CheckoutCreateInput!) {
	checkoutCreate(input: $input) {
		checkout { webUrl }
		checkoutUserErrors { code field message }
	}
}`

const customerFields = `
	id
	email
	firstName
	lastName
	displayName
	phone`

const queryCustomer = `
query Customer($customerAccessToken: String!) {
	customer(customerAccessToken: $customerAccessToken) {` + customerFields + `
	}
}`

const queryCustomerAddresses = `
query CustomerAddresses($customerAccessToken: String!) {
	customer(customerAccessToken: $customerAccessToken) {
		addresses(first: 20) {
			edges {
				node { id address1 address2 city province zip country phone }
			}
		}
	}
}`

const mutationCustomerCreate = `
mutation CustomerCreate($input: CustomerCreateInput!) {
	customerCreate(input: $input) {
		customer {` + customerFields + `
		}
		customerUserErrors { code field message }
	}
}`

const mutationCustomerAccessTokenCreate = `
mutation CustomerAccessTokenCreate($input: CustomerAccessTokenCreateInput!) {
	customerAccessTokenCreate(input: $input) {
		customerAccessToken { accessToken expiresAt }
		customerUserErrors { code field message }
	}
}`

const mutationCustomerAccessTokenDelete = `
mutation CustomerAccessTokenDelete($customerAccessToken: String!) {
	customerAccessTokenDelete(customerAccessToken: $customerAccessToken) {
		deletedAccessToken
		userErrors { field message }
	}
}`

const mutationCustomerRecover = `
mutation CustomerRecover($email: String!) {
	customerRecover(email: $email) {
		customerUserErrors { code field message }
	}
}`

const mutationCustomerUpdate = `
mutation CustomerUpdate($customerAccessToken: String!, $customer: CustomerUpdateInput!) {
	customerUpdate(customerAccessToken: $customerAccessToken, customer: $customer) {
		customer {` + customerFields + `
		}
		customerUserErrors { code field message }
	}
}`

const mutationCustomerAddressCreate = `
mutation CustomerAddressCreate($customerAccessToken: String!, $address: MailingAddressInput!) {
	customerAddressCreate(customerAccessToken: $customerAccessToken, address: $address) {
		customerAddress { id address1 address2 city province zip country phone }
		customerUserErrors { code field message }
	}
}`

const mutationCustomerAddressUpdate = `
mutation CustomerAddressUpdate($customerAccessToken: String!, $id: ID!, $address: MailingAddressInput!) {
	customerAddressUpdate(customerAccessToken: $customerAccessToken, id: $id, address: $address) {
		customerAddress { id address1 address2 city province zip country phone }
		customerUserErrors { code field message }
	}
}`

const mutationCustomerAddressDelete = `
mutation CustomerAddressDelete($customerAccessToken: String!, $id: ID!) {
	customerAddressDelete(customerAccessToken: $customerAccessToken, id: $id) {
		deletedCustomerAddressId
		customerUserErrors { code field message }
	}
}`
