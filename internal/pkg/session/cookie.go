package session

// CookieName is the HttpOnly cookie carrying the raw session token.
const CookieName = "localfix_session"
