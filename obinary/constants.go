package obinary

// internal client constants
const (
	noSessionID            = -1
	driverName             = "orientgo OrientDB Go client"
	driverVersion          = "1.0"
	minProtocolVersion     = 21 // min protocol supported by this client
	maxProtocolVersion     = 28 // max protocol supported by this client
	currentProtocolVersion = 28 // sent as short as first packet after socket connection

	// protocol version cutoffs that gate request/response field shapes;
	// see https://orientdb.com/docs/last/Network-Binary-Protocol.html
	protoVersionDbName      = 6  // db-exists carries the database name
	protoVersionStorageType = 16 // 1.5-snapshot; storage-type string on exists/drop
	protoVersionSerializer  = 21 // above this, the serialization-impl travels on connect/open
	protoVersionClusterV2   = 24 // at and above, cluster entries drop type/segment
)

// request operation codes, copied from the Java OChannelBinaryProtocol
const (
	requestShutdown       = 1
	requestConnect        = 2
	requestDbOpen         = 3
	requestDbCreate       = 4
	requestDbClose        = 5
	requestDbExist        = 6
	requestDbDrop         = 7
	requestDbSize         = 8
	requestDbCountRecords = 9
	requestDbReload       = 73 // since 1.0rc4
)

// response status codes
const (
	responseStatusOk    = 0
	responseStatusError = 1
)
