package knownheaders

// The registry is the single source of truth for which headers get a bit in
// the presence bitmap. Names are the canonical wire spellings; baggage,
// traceparent and tracestate are registered lowercase because that is how
// they appear on the wire (W3C trace context).

// HeaderContentLength is handled out of band: requests keep it outside the
// bitmap entirely, responses pin it to bit 63, trailers do not register it.
const HeaderContentLength = "Content-Length"

// commonHeaders appear in both the request and the response direction.
var commonHeaders = []string{
	"Allow",
	"Cache-Control",
	"Connection",
	"Content-Encoding",
	"Content-Language",
	"Content-Location",
	"Content-MD5",
	"Content-Range",
	"Content-Type",
	"Date",
	"Expires",
	"Keep-Alive",
	"Last-Modified",
	"Pragma",
	"Trailer",
	"Transfer-Encoding",
	"Upgrade",
	"Via",
	"Warning",
}

var requestOnlyHeaders = []string{
	"Accept",
	"Accept-Charset",
	"Accept-Encoding",
	"Accept-Language",
	"Access-Control-Request-Headers",
	"Access-Control-Request-Method",
	"Authorization",
	"baggage",
	"Cookie",
	"Correlation-Context",
	"DNT",
	"Expect",
	"From",
	"Grpc-Accept-Encoding",
	"Grpc-Encoding",
	"Grpc-Timeout",
	"Host",
	"If-Match",
	"If-Modified-Since",
	"If-None-Match",
	"If-Range",
	"If-Unmodified-Since",
	"Max-Forwards",
	"Origin",
	"Proxy-Authorization",
	"Range",
	"Referer",
	"Request-Id",
	"TE",
	"traceparent",
	"tracestate",
	"Translate",
	"Upgrade-Insecure-Requests",
	"User-Agent",
}

var responseOnlyHeaders = []string{
	"Accept-Ranges",
	"Access-Control-Allow-Credentials",
	"Access-Control-Allow-Headers",
	"Access-Control-Allow-Methods",
	"Access-Control-Allow-Origin",
	"Access-Control-Expose-Headers",
	"Access-Control-Max-Age",
	"Age",
	"Alt-Svc",
	"ETag",
	"Location",
	"Proxy-Authenticate",
	"Proxy-Connection",
	"Retry-After",
	"Server",
	"Set-Cookie",
	"Vary",
	"WWW-Authenticate",
}

var trailerHeaders = []string{
	"ETag",
	"Grpc-Message",
	"Grpc-Status",
}

// pseudoRequestHeaders participate in HTTP/2 request handling. They get
// bits and slots like any known header but stay off the public surface.
var pseudoRequestHeaders = []string{
	":authority",
	":method",
	":path",
	":scheme",
}

// pseudoResponseHeaders are tracked for the identifier enumeration only;
// the response status travels in the status line, never as a dictionary
// entry.
var pseudoResponseHeaders = []string{
	":status",
}

// primaryHeaders bubble to the front of the ordering so the hottest names
// get the smallest bit indices and the earliest match-cascade positions.
var primaryHeaders = map[Direction]map[string]bool{
	DirRequest:  nameSet("Accept", "Connection", "Host", "User-Agent"),
	DirResponse: nameSet("Connection", "Content-Type", "Date", "Server"),
	DirTrailer:  {},
}

// existenceCheckHeaders get a dedicated presence predicate accessor.
var existenceCheckHeaders = map[Direction]map[string]bool{
	DirRequest:  nameSet("Connection", "Upgrade"),
	DirResponse: nameSet("Connection", "Transfer-Encoding"),
	DirTrailer:  {},
}

// fastCountHeaders get a dedicated value-count accessor.
var fastCountHeaders = map[Direction]map[string]bool{
	DirRequest:  nameSet("Host"),
	DirResponse: {},
	DirTrailer:  {},
}

// enhancedSetterHeaders carry a raw pre-encoded byte slot that, when
// populated, replaces normal serialization. Response direction only.
var enhancedSetterHeaders = nameSet(
	"Connection",
	"Content-Type",
	"Date",
	"Server",
	"Transfer-Encoding",
)

// invalidH2H3Headers are connection-level headers that must never appear in
// an HTTP/2 or HTTP/3 response.
var invalidH2H3Headers = nameSet(
	"Connection",
	"Keep-Alive",
	"Proxy-Connection",
	"Transfer-Encoding",
	"Upgrade",
)

func nameSet(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[lowerASCII(n)] = true
	}
	return m
}

// registryNames returns the unplanned name list for a direction, pseudo
// headers included where they are live (requests).
func registryNames(dir Direction) []string {
	switch dir {
	case DirRequest:
		names := make([]string, 0, len(pseudoRequestHeaders)+len(commonHeaders)+len(requestOnlyHeaders))
		names = append(names, pseudoRequestHeaders...)
		names = append(names, commonHeaders...)
		names = append(names, requestOnlyHeaders...)
		return names
	case DirResponse:
		names := make([]string, 0, len(commonHeaders)+len(responseOnlyHeaders))
		names = append(names, commonHeaders...)
		names = append(names, responseOnlyHeaders...)
		return names
	case DirTrailer:
		return append([]string(nil), trailerHeaders...)
	default:
		panic("knownheaders: unknown direction")
	}
}

// AllIdentifiers returns every unique identifier across all directions and
// the pseudo-header lists, sorted byte-wise ascending. This is the closed
// enumeration emitted as KnownHeaderType.
func AllIdentifiers() []string {
	set := make(map[string]bool)
	for _, t := range Tables() {
		for _, h := range t.Headers {
			set[h.Identifier] = true
		}
		if t.ContentLength != nil {
			set[t.ContentLength.Identifier] = true
		}
	}
	for _, n := range pseudoResponseHeaders {
		set[Identifier(n)] = true
	}
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sortStrings(ids)
	return ids
}
