package pitchtalk

// API paths, relative to the base URL
const (
	PathAuth          = "/auth"
	PathFarmings      = "/farmings"
	PathClaimFarming  = "/users/claim-farming"
	PathReferralCount = "/referral/count"
	PathClaimReferral = "/users/claim-referral"
)

// Endpoint labels used in logs and metrics
const (
	EndpointAuth          = "auth"
	EndpointFarmings      = "farmings"
	EndpointClaimFarming  = "claim_farming"
	EndpointReferralCount = "referral_count"
	EndpointClaimReferral = "claim_referral"
)

const (
	HeaderAuthorization = "Authorization"
	HeaderOrigin        = "Origin"
	HeaderReferer       = "Referer"
	HeaderContentType   = "Content-Type"
	HeaderAccept        = "Accept"
	ContentTypeJSON     = "application/json"
	BearerPrefix        = "Bearer "
)

// maxBodyExcerpt bounds how much of an error response is kept in StatusError
const maxBodyExcerpt = 256

// maxResponseSize bounds how much of any response body is read
const maxResponseSize = 1 << 20
