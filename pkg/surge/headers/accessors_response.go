package headers

var (
	respAcceptRanges                  = mustIndex(responseTable, "Accept-Ranges")
	respAccessControlAllowCredentials = mustIndex(responseTable, "Access-Control-Allow-Credentials")
	respAccessControlAllowHeaders     = mustIndex(responseTable, "Access-Control-Allow-Headers")
	respAccessControlAllowMethods     = mustIndex(responseTable, "Access-Control-Allow-Methods")
	respAccessControlAllowOrigin      = mustIndex(responseTable, "Access-Control-Allow-Origin")
	respAccessControlExposeHeaders    = mustIndex(responseTable, "Access-Control-Expose-Headers")
	respAccessControlMaxAge           = mustIndex(responseTable, "Access-Control-Max-Age")
	respAge                           = mustIndex(responseTable, "Age")
	respAllow                         = mustIndex(responseTable, "Allow")
	respAltSvc                        = mustIndex(responseTable, "Alt-Svc")
	respCacheControl                  = mustIndex(responseTable, "Cache-Control")
	respConnection                    = mustIndex(responseTable, "Connection")
	respContentEncoding               = mustIndex(responseTable, "Content-Encoding")
	respContentLanguage               = mustIndex(responseTable, "Content-Language")
	respContentLocation               = mustIndex(responseTable, "Content-Location")
	respContentMD5                    = mustIndex(responseTable, "Content-MD5")
	respContentRange                  = mustIndex(responseTable, "Content-Range")
	respContentType                   = mustIndex(responseTable, "Content-Type")
	respDate                          = mustIndex(responseTable, "Date")
	respETag                          = mustIndex(responseTable, "ETag")
	respExpires                       = mustIndex(responseTable, "Expires")
	respKeepAlive                     = mustIndex(responseTable, "Keep-Alive")
	respLastModified                  = mustIndex(responseTable, "Last-Modified")
	respLocation                      = mustIndex(responseTable, "Location")
	respPragma                        = mustIndex(responseTable, "Pragma")
	respProxyAuthenticate             = mustIndex(responseTable, "Proxy-Authenticate")
	respProxyConnection               = mustIndex(responseTable, "Proxy-Connection")
	respRetryAfter                    = mustIndex(responseTable, "Retry-After")
	respServer                        = mustIndex(responseTable, "Server")
	respSetCookie                     = mustIndex(responseTable, "Set-Cookie")
	respTrailer                       = mustIndex(responseTable, "Trailer")
	respTransferEncoding              = mustIndex(responseTable, "Transfer-Encoding")
	respUpgrade                       = mustIndex(responseTable, "Upgrade")
	respVary                          = mustIndex(responseTable, "Vary")
	respVia                           = mustIndex(responseTable, "Via")
	respWWWAuthenticate               = mustIndex(responseTable, "WWW-Authenticate")
	respWarning                       = mustIndex(responseTable, "Warning")
)

func (h *ResponseHeaders) AcceptRanges() string     { return h.known(respAcceptRanges) }
func (h *ResponseHeaders) SetAcceptRanges(v string) { h.setKnown(respAcceptRanges, v) }

func (h *ResponseHeaders) AccessControlAllowCredentials() string {
	return h.known(respAccessControlAllowCredentials)
}

func (h *ResponseHeaders) SetAccessControlAllowCredentials(v string) {
	h.setKnown(respAccessControlAllowCredentials, v)
}

func (h *ResponseHeaders) AccessControlAllowHeaders() string {
	return h.known(respAccessControlAllowHeaders)
}

func (h *ResponseHeaders) SetAccessControlAllowHeaders(v string) {
	h.setKnown(respAccessControlAllowHeaders, v)
}

func (h *ResponseHeaders) AccessControlAllowMethods() string {
	return h.known(respAccessControlAllowMethods)
}

func (h *ResponseHeaders) SetAccessControlAllowMethods(v string) {
	h.setKnown(respAccessControlAllowMethods, v)
}

func (h *ResponseHeaders) AccessControlAllowOrigin() string {
	return h.known(respAccessControlAllowOrigin)
}

func (h *ResponseHeaders) SetAccessControlAllowOrigin(v string) {
	h.setKnown(respAccessControlAllowOrigin, v)
}

func (h *ResponseHeaders) AccessControlExposeHeaders() string {
	return h.known(respAccessControlExposeHeaders)
}

func (h *ResponseHeaders) SetAccessControlExposeHeaders(v string) {
	h.setKnown(respAccessControlExposeHeaders, v)
}

func (h *ResponseHeaders) AccessControlMaxAge() string     { return h.known(respAccessControlMaxAge) }
func (h *ResponseHeaders) SetAccessControlMaxAge(v string) { h.setKnown(respAccessControlMaxAge, v) }
func (h *ResponseHeaders) Age() string                     { return h.known(respAge) }
func (h *ResponseHeaders) SetAge(v string)                 { h.setKnown(respAge, v) }
func (h *ResponseHeaders) Allow() string                   { return h.known(respAllow) }
func (h *ResponseHeaders) SetAllow(v string)               { h.setKnown(respAllow, v) }
func (h *ResponseHeaders) AltSvc() string                  { return h.known(respAltSvc) }
func (h *ResponseHeaders) SetAltSvc(v string)              { h.setKnown(respAltSvc, v) }
func (h *ResponseHeaders) CacheControl() string            { return h.known(respCacheControl) }
func (h *ResponseHeaders) SetCacheControl(v string)        { h.setKnown(respCacheControl, v) }
func (h *ResponseHeaders) Connection() string              { return h.known(respConnection) }
func (h *ResponseHeaders) SetConnection(v string)          { h.setKnown(respConnection, v) }
func (h *ResponseHeaders) ContentEncoding() string         { return h.known(respContentEncoding) }
func (h *ResponseHeaders) SetContentEncoding(v string)     { h.setKnown(respContentEncoding, v) }
func (h *ResponseHeaders) ContentLanguage() string         { return h.known(respContentLanguage) }
func (h *ResponseHeaders) SetContentLanguage(v string)     { h.setKnown(respContentLanguage, v) }
func (h *ResponseHeaders) ContentLocation() string         { return h.known(respContentLocation) }
func (h *ResponseHeaders) SetContentLocation(v string)     { h.setKnown(respContentLocation, v) }
func (h *ResponseHeaders) ContentMD5() string              { return h.known(respContentMD5) }
func (h *ResponseHeaders) SetContentMD5(v string)          { h.setKnown(respContentMD5, v) }
func (h *ResponseHeaders) ContentRange() string            { return h.known(respContentRange) }
func (h *ResponseHeaders) SetContentRange(v string)        { h.setKnown(respContentRange, v) }
func (h *ResponseHeaders) ContentType() string             { return h.known(respContentType) }
func (h *ResponseHeaders) SetContentType(v string)         { h.setKnown(respContentType, v) }
func (h *ResponseHeaders) Date() string                    { return h.known(respDate) }
func (h *ResponseHeaders) SetDate(v string)                { h.setKnown(respDate, v) }
func (h *ResponseHeaders) ETag() string                    { return h.known(respETag) }
func (h *ResponseHeaders) SetETag(v string)                { h.setKnown(respETag, v) }
func (h *ResponseHeaders) Expires() string                 { return h.known(respExpires) }
func (h *ResponseHeaders) SetExpires(v string)             { h.setKnown(respExpires, v) }
func (h *ResponseHeaders) KeepAlive() string               { return h.known(respKeepAlive) }
func (h *ResponseHeaders) SetKeepAlive(v string)           { h.setKnown(respKeepAlive, v) }
func (h *ResponseHeaders) LastModified() string            { return h.known(respLastModified) }
func (h *ResponseHeaders) SetLastModified(v string)        { h.setKnown(respLastModified, v) }
func (h *ResponseHeaders) Location() string                { return h.known(respLocation) }
func (h *ResponseHeaders) SetLocation(v string)            { h.setKnown(respLocation, v) }
func (h *ResponseHeaders) Pragma() string                  { return h.known(respPragma) }
func (h *ResponseHeaders) SetPragma(v string)              { h.setKnown(respPragma, v) }
func (h *ResponseHeaders) ProxyAuthenticate() string       { return h.known(respProxyAuthenticate) }
func (h *ResponseHeaders) SetProxyAuthenticate(v string)   { h.setKnown(respProxyAuthenticate, v) }
func (h *ResponseHeaders) ProxyConnection() string         { return h.known(respProxyConnection) }
func (h *ResponseHeaders) SetProxyConnection(v string)     { h.setKnown(respProxyConnection, v) }
func (h *ResponseHeaders) RetryAfter() string              { return h.known(respRetryAfter) }
func (h *ResponseHeaders) SetRetryAfter(v string)          { h.setKnown(respRetryAfter, v) }
func (h *ResponseHeaders) Server() string                  { return h.known(respServer) }
func (h *ResponseHeaders) SetServer(v string)              { h.setKnown(respServer, v) }
func (h *ResponseHeaders) SetCookie() string               { return h.known(respSetCookie) }
func (h *ResponseHeaders) SetSetCookie(v string)           { h.setKnown(respSetCookie, v) }
func (h *ResponseHeaders) Trailer() string                 { return h.known(respTrailer) }
func (h *ResponseHeaders) SetTrailer(v string)             { h.setKnown(respTrailer, v) }
func (h *ResponseHeaders) TransferEncoding() string        { return h.known(respTransferEncoding) }
func (h *ResponseHeaders) SetTransferEncoding(v string)    { h.setKnown(respTransferEncoding, v) }
func (h *ResponseHeaders) Upgrade() string                 { return h.known(respUpgrade) }
func (h *ResponseHeaders) SetUpgrade(v string)             { h.setKnown(respUpgrade, v) }
func (h *ResponseHeaders) Vary() string                    { return h.known(respVary) }
func (h *ResponseHeaders) SetVary(v string)                { h.setKnown(respVary, v) }
func (h *ResponseHeaders) Via() string                     { return h.known(respVia) }
func (h *ResponseHeaders) SetVia(v string)                 { h.setKnown(respVia, v) }
func (h *ResponseHeaders) WWWAuthenticate() string         { return h.known(respWWWAuthenticate) }
func (h *ResponseHeaders) SetWWWAuthenticate(v string)     { h.setKnown(respWWWAuthenticate, v) }
func (h *ResponseHeaders) Warning() string                 { return h.known(respWarning) }
func (h *ResponseHeaders) SetWarning(v string)             { h.setKnown(respWarning, v) }

// Existence-check helpers per the registry flags.

func (h *ResponseHeaders) HasConnection() bool { return h.bits&(1<<uint(respConnection)) != 0 }

func (h *ResponseHeaders) HasTransferEncoding() bool {
	return h.bits&(1<<uint(respTransferEncoding)) != 0
}

// Raw setters for the enhanced-setter headers: the value participates in
// lookup and enumeration while raw carries the exact wire bytes the
// serializer emits in its place. Raw must be a complete "\r\nName: value"
// sequence.

func (h *ResponseHeaders) SetRawConnection(v string, raw []byte) {
	h.setKnownRaw(respConnection, v, raw)
}

func (h *ResponseHeaders) SetRawContentType(v string, raw []byte) {
	h.setKnownRaw(respContentType, v, raw)
}

func (h *ResponseHeaders) SetRawDate(v string, raw []byte) {
	h.setKnownRaw(respDate, v, raw)
}

func (h *ResponseHeaders) SetRawServer(v string, raw []byte) {
	h.setKnownRaw(respServer, v, raw)
}

func (h *ResponseHeaders) SetRawTransferEncoding(v string, raw []byte) {
	h.setKnownRaw(respTransferEncoding, v, raw)
}
