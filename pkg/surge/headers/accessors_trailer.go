package headers

var (
	trlETag        = mustIndex(trailerTable, "ETag")
	trlGrpcMessage = mustIndex(trailerTable, "Grpc-Message")
	trlGrpcStatus  = mustIndex(trailerTable, "Grpc-Status")
)

func (h *ResponseTrailers) ETag() string            { return h.known(trlETag) }
func (h *ResponseTrailers) SetETag(v string)        { h.setKnown(trlETag, v) }
func (h *ResponseTrailers) GrpcMessage() string     { return h.known(trlGrpcMessage) }
func (h *ResponseTrailers) SetGrpcMessage(v string) { h.setKnown(trlGrpcMessage, v) }
func (h *ResponseTrailers) GrpcStatus() string      { return h.known(trlGrpcStatus) }
func (h *ResponseTrailers) SetGrpcStatus(v string)  { h.setKnown(trlGrpcStatus, v) }
