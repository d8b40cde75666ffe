package headers

// Typed accessors mirror the generated artifact: one getter/setter pair
// per identifier, plus the existence-check and fast-count helpers the
// registry flags grant. Getters return the first value; multi-value
// headers are reachable through Values.

func mustIndex(t *table, name string) int {
	h := t.match([]byte(name))
	if h == nil || h.Index < 0 {
		panic("headers: " + name + " is not a bit-indexed known header")
	}
	return h.Index
}

var (
	reqAuthority = mustIndex(requestTable, ":authority")
	reqMethod    = mustIndex(requestTable, ":method")
	reqPath      = mustIndex(requestTable, ":path")
	reqScheme    = mustIndex(requestTable, ":scheme")

	reqAccept                      = mustIndex(requestTable, "Accept")
	reqAcceptCharset               = mustIndex(requestTable, "Accept-Charset")
	reqAcceptEncoding              = mustIndex(requestTable, "Accept-Encoding")
	reqAcceptLanguage              = mustIndex(requestTable, "Accept-Language")
	reqAccessControlRequestHeaders = mustIndex(requestTable, "Access-Control-Request-Headers")
	reqAccessControlRequestMethod  = mustIndex(requestTable, "Access-Control-Request-Method")
	reqAllow                       = mustIndex(requestTable, "Allow")
	reqAuthorization               = mustIndex(requestTable, "Authorization")
	reqBaggage                     = mustIndex(requestTable, "baggage")
	reqCacheControl                = mustIndex(requestTable, "Cache-Control")
	reqConnection                  = mustIndex(requestTable, "Connection")
	reqContentEncoding             = mustIndex(requestTable, "Content-Encoding")
	reqContentLanguage             = mustIndex(requestTable, "Content-Language")
	reqContentLocation             = mustIndex(requestTable, "Content-Location")
	reqContentMD5                  = mustIndex(requestTable, "Content-MD5")
	reqContentRange                = mustIndex(requestTable, "Content-Range")
	reqContentType                 = mustIndex(requestTable, "Content-Type")
	reqCookie                      = mustIndex(requestTable, "Cookie")
	reqCorrelationContext          = mustIndex(requestTable, "Correlation-Context")
	reqDNT                         = mustIndex(requestTable, "DNT")
	reqDate                        = mustIndex(requestTable, "Date")
	reqExpect                      = mustIndex(requestTable, "Expect")
	reqExpires                     = mustIndex(requestTable, "Expires")
	reqFrom                        = mustIndex(requestTable, "From")
	reqGrpcAcceptEncoding          = mustIndex(requestTable, "Grpc-Accept-Encoding")
	reqGrpcEncoding                = mustIndex(requestTable, "Grpc-Encoding")
	reqGrpcTimeout                 = mustIndex(requestTable, "Grpc-Timeout")
	reqHost                        = mustIndex(requestTable, "Host")
	reqIfMatch                     = mustIndex(requestTable, "If-Match")
	reqIfModifiedSince             = mustIndex(requestTable, "If-Modified-Since")
	reqIfNoneMatch                 = mustIndex(requestTable, "If-None-Match")
	reqIfRange                     = mustIndex(requestTable, "If-Range")
	reqIfUnmodifiedSince           = mustIndex(requestTable, "If-Unmodified-Since")
	reqKeepAlive                   = mustIndex(requestTable, "Keep-Alive")
	reqLastModified                = mustIndex(requestTable, "Last-Modified")
	reqMaxForwards                 = mustIndex(requestTable, "Max-Forwards")
	reqOrigin                      = mustIndex(requestTable, "Origin")
	reqPragma                      = mustIndex(requestTable, "Pragma")
	reqProxyAuthorization          = mustIndex(requestTable, "Proxy-Authorization")
	reqRange                       = mustIndex(requestTable, "Range")
	reqReferer                     = mustIndex(requestTable, "Referer")
	reqRequestId                   = mustIndex(requestTable, "Request-Id")
	reqTE                          = mustIndex(requestTable, "TE")
	reqTraceParent                 = mustIndex(requestTable, "traceparent")
	reqTraceState                  = mustIndex(requestTable, "tracestate")
	reqTrailer                     = mustIndex(requestTable, "Trailer")
	reqTransferEncoding            = mustIndex(requestTable, "Transfer-Encoding")
	reqTranslate                   = mustIndex(requestTable, "Translate")
	reqUpgrade                     = mustIndex(requestTable, "Upgrade")
	reqUpgradeInsecureRequests     = mustIndex(requestTable, "Upgrade-Insecure-Requests")
	reqUserAgent                   = mustIndex(requestTable, "User-Agent")
	reqVia                         = mustIndex(requestTable, "Via")
	reqWarning                     = mustIndex(requestTable, "Warning")
)

func (h *RequestHeaders) Authority() string      { return h.known(reqAuthority) }
func (h *RequestHeaders) SetAuthority(v string)  { h.setKnown(reqAuthority, v) }
func (h *RequestHeaders) Method() string         { return h.known(reqMethod) }
func (h *RequestHeaders) SetMethod(v string)     { h.setKnown(reqMethod, v) }
func (h *RequestHeaders) Path() string           { return h.known(reqPath) }
func (h *RequestHeaders) SetPath(v string)       { h.setKnown(reqPath, v) }
func (h *RequestHeaders) Scheme() string         { return h.known(reqScheme) }
func (h *RequestHeaders) SetScheme(v string)     { h.setKnown(reqScheme, v) }

func (h *RequestHeaders) Accept() string             { return h.known(reqAccept) }
func (h *RequestHeaders) SetAccept(v string)         { h.setKnown(reqAccept, v) }
func (h *RequestHeaders) AcceptCharset() string      { return h.known(reqAcceptCharset) }
func (h *RequestHeaders) SetAcceptCharset(v string)  { h.setKnown(reqAcceptCharset, v) }
func (h *RequestHeaders) AcceptEncoding() string     { return h.known(reqAcceptEncoding) }
func (h *RequestHeaders) SetAcceptEncoding(v string) { h.setKnown(reqAcceptEncoding, v) }
func (h *RequestHeaders) AcceptLanguage() string     { return h.known(reqAcceptLanguage) }
func (h *RequestHeaders) SetAcceptLanguage(v string) { h.setKnown(reqAcceptLanguage, v) }

func (h *RequestHeaders) AccessControlRequestHeaders() string {
	return h.known(reqAccessControlRequestHeaders)
}

func (h *RequestHeaders) SetAccessControlRequestHeaders(v string) {
	h.setKnown(reqAccessControlRequestHeaders, v)
}

func (h *RequestHeaders) AccessControlRequestMethod() string {
	return h.known(reqAccessControlRequestMethod)
}

func (h *RequestHeaders) SetAccessControlRequestMethod(v string) {
	h.setKnown(reqAccessControlRequestMethod, v)
}

func (h *RequestHeaders) Allow() string                  { return h.known(reqAllow) }
func (h *RequestHeaders) SetAllow(v string)              { h.setKnown(reqAllow, v) }
func (h *RequestHeaders) Authorization() string          { return h.known(reqAuthorization) }
func (h *RequestHeaders) SetAuthorization(v string)      { h.setKnown(reqAuthorization, v) }
func (h *RequestHeaders) Baggage() string                { return h.known(reqBaggage) }
func (h *RequestHeaders) SetBaggage(v string)            { h.setKnown(reqBaggage, v) }
func (h *RequestHeaders) CacheControl() string           { return h.known(reqCacheControl) }
func (h *RequestHeaders) SetCacheControl(v string)       { h.setKnown(reqCacheControl, v) }
func (h *RequestHeaders) Connection() string             { return h.known(reqConnection) }
func (h *RequestHeaders) SetConnection(v string)         { h.setKnown(reqConnection, v) }
func (h *RequestHeaders) ContentEncoding() string        { return h.known(reqContentEncoding) }
func (h *RequestHeaders) SetContentEncoding(v string)    { h.setKnown(reqContentEncoding, v) }
func (h *RequestHeaders) ContentLanguage() string        { return h.known(reqContentLanguage) }
func (h *RequestHeaders) SetContentLanguage(v string)    { h.setKnown(reqContentLanguage, v) }
func (h *RequestHeaders) ContentLocation() string        { return h.known(reqContentLocation) }
func (h *RequestHeaders) SetContentLocation(v string)    { h.setKnown(reqContentLocation, v) }
func (h *RequestHeaders) ContentMD5() string             { return h.known(reqContentMD5) }
func (h *RequestHeaders) SetContentMD5(v string)         { h.setKnown(reqContentMD5, v) }
func (h *RequestHeaders) ContentRange() string           { return h.known(reqContentRange) }
func (h *RequestHeaders) SetContentRange(v string)       { h.setKnown(reqContentRange, v) }
func (h *RequestHeaders) ContentType() string            { return h.known(reqContentType) }
func (h *RequestHeaders) SetContentType(v string)        { h.setKnown(reqContentType, v) }
func (h *RequestHeaders) Cookie() string                 { return h.known(reqCookie) }
func (h *RequestHeaders) SetCookie(v string)             { h.setKnown(reqCookie, v) }
func (h *RequestHeaders) CorrelationContext() string     { return h.known(reqCorrelationContext) }
func (h *RequestHeaders) SetCorrelationContext(v string) { h.setKnown(reqCorrelationContext, v) }
func (h *RequestHeaders) DNT() string                    { return h.known(reqDNT) }
func (h *RequestHeaders) SetDNT(v string)                { h.setKnown(reqDNT, v) }
func (h *RequestHeaders) Date() string                   { return h.known(reqDate) }
func (h *RequestHeaders) SetDate(v string)               { h.setKnown(reqDate, v) }
func (h *RequestHeaders) Expect() string                 { return h.known(reqExpect) }
func (h *RequestHeaders) SetExpect(v string)             { h.setKnown(reqExpect, v) }
func (h *RequestHeaders) Expires() string                { return h.known(reqExpires) }
func (h *RequestHeaders) SetExpires(v string)            { h.setKnown(reqExpires, v) }
func (h *RequestHeaders) From() string                   { return h.known(reqFrom) }
func (h *RequestHeaders) SetFrom(v string)               { h.setKnown(reqFrom, v) }
func (h *RequestHeaders) GrpcAcceptEncoding() string     { return h.known(reqGrpcAcceptEncoding) }
func (h *RequestHeaders) SetGrpcAcceptEncoding(v string) { h.setKnown(reqGrpcAcceptEncoding, v) }
func (h *RequestHeaders) GrpcEncoding() string           { return h.known(reqGrpcEncoding) }
func (h *RequestHeaders) SetGrpcEncoding(v string)       { h.setKnown(reqGrpcEncoding, v) }
func (h *RequestHeaders) GrpcTimeout() string            { return h.known(reqGrpcTimeout) }
func (h *RequestHeaders) SetGrpcTimeout(v string)        { h.setKnown(reqGrpcTimeout, v) }
func (h *RequestHeaders) Host() string                   { return h.known(reqHost) }
func (h *RequestHeaders) SetHost(v string)               { h.setKnown(reqHost, v) }
func (h *RequestHeaders) IfMatch() string                { return h.known(reqIfMatch) }
func (h *RequestHeaders) SetIfMatch(v string)            { h.setKnown(reqIfMatch, v) }
func (h *RequestHeaders) IfModifiedSince() string        { return h.known(reqIfModifiedSince) }
func (h *RequestHeaders) SetIfModifiedSince(v string)    { h.setKnown(reqIfModifiedSince, v) }
func (h *RequestHeaders) IfNoneMatch() string            { return h.known(reqIfNoneMatch) }
func (h *RequestHeaders) SetIfNoneMatch(v string)        { h.setKnown(reqIfNoneMatch, v) }
func (h *RequestHeaders) IfRange() string                { return h.known(reqIfRange) }
func (h *RequestHeaders) SetIfRange(v string)            { h.setKnown(reqIfRange, v) }
func (h *RequestHeaders) IfUnmodifiedSince() string      { return h.known(reqIfUnmodifiedSince) }
func (h *RequestHeaders) SetIfUnmodifiedSince(v string)  { h.setKnown(reqIfUnmodifiedSince, v) }
func (h *RequestHeaders) KeepAlive() string              { return h.known(reqKeepAlive) }
func (h *RequestHeaders) SetKeepAlive(v string)          { h.setKnown(reqKeepAlive, v) }
func (h *RequestHeaders) LastModified() string           { return h.known(reqLastModified) }
func (h *RequestHeaders) SetLastModified(v string)       { h.setKnown(reqLastModified, v) }
func (h *RequestHeaders) MaxForwards() string            { return h.known(reqMaxForwards) }
func (h *RequestHeaders) SetMaxForwards(v string)        { h.setKnown(reqMaxForwards, v) }
func (h *RequestHeaders) Origin() string                 { return h.known(reqOrigin) }
func (h *RequestHeaders) SetOrigin(v string)             { h.setKnown(reqOrigin, v) }
func (h *RequestHeaders) Pragma() string                 { return h.known(reqPragma) }
func (h *RequestHeaders) SetPragma(v string)             { h.setKnown(reqPragma, v) }
func (h *RequestHeaders) ProxyAuthorization() string     { return h.known(reqProxyAuthorization) }
func (h *RequestHeaders) SetProxyAuthorization(v string) { h.setKnown(reqProxyAuthorization, v) }
func (h *RequestHeaders) Range() string                  { return h.known(reqRange) }
func (h *RequestHeaders) SetRange(v string)              { h.setKnown(reqRange, v) }
func (h *RequestHeaders) Referer() string                { return h.known(reqReferer) }
func (h *RequestHeaders) SetReferer(v string)            { h.setKnown(reqReferer, v) }
func (h *RequestHeaders) RequestId() string              { return h.known(reqRequestId) }
func (h *RequestHeaders) SetRequestId(v string)          { h.setKnown(reqRequestId, v) }
func (h *RequestHeaders) TE() string                     { return h.known(reqTE) }
func (h *RequestHeaders) SetTE(v string)                 { h.setKnown(reqTE, v) }
func (h *RequestHeaders) TraceParent() string            { return h.known(reqTraceParent) }
func (h *RequestHeaders) SetTraceParent(v string)        { h.setKnown(reqTraceParent, v) }
func (h *RequestHeaders) TraceState() string             { return h.known(reqTraceState) }
func (h *RequestHeaders) SetTraceState(v string)         { h.setKnown(reqTraceState, v) }
func (h *RequestHeaders) Trailer() string                { return h.known(reqTrailer) }
func (h *RequestHeaders) SetTrailer(v string)            { h.setKnown(reqTrailer, v) }
func (h *RequestHeaders) TransferEncoding() string       { return h.known(reqTransferEncoding) }
func (h *RequestHeaders) SetTransferEncoding(v string)   { h.setKnown(reqTransferEncoding, v) }
func (h *RequestHeaders) Translate() string              { return h.known(reqTranslate) }
func (h *RequestHeaders) SetTranslate(v string)          { h.setKnown(reqTranslate, v) }
func (h *RequestHeaders) Upgrade() string                { return h.known(reqUpgrade) }
func (h *RequestHeaders) SetUpgrade(v string)            { h.setKnown(reqUpgrade, v) }

func (h *RequestHeaders) UpgradeInsecureRequests() string {
	return h.known(reqUpgradeInsecureRequests)
}

func (h *RequestHeaders) SetUpgradeInsecureRequests(v string) {
	h.setKnown(reqUpgradeInsecureRequests, v)
}

func (h *RequestHeaders) UserAgent() string     { return h.known(reqUserAgent) }
func (h *RequestHeaders) SetUserAgent(v string) { h.setKnown(reqUserAgent, v) }
func (h *RequestHeaders) Via() string           { return h.known(reqVia) }
func (h *RequestHeaders) SetVia(v string)       { h.setKnown(reqVia, v) }
func (h *RequestHeaders) Warning() string       { return h.known(reqWarning) }
func (h *RequestHeaders) SetWarning(v string)   { h.setKnown(reqWarning, v) }

// Existence-check and fast-count helpers per the registry flags.

func (h *RequestHeaders) HasConnection() bool { return h.bits&(1<<uint(reqConnection)) != 0 }
func (h *RequestHeaders) HasUpgrade() bool    { return h.bits&(1<<uint(reqUpgrade)) != 0 }
func (h *RequestHeaders) HostCount() int      { return h.knownCount(reqHost) }
