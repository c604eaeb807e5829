package ghapi

var EscapePathSegmentForTest = escapePathSegment
