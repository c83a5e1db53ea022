// Package datasets provides simplified access to the UCR/UEA time-series
// classification archive.
//
// Datasets are downloaded as zip archives from the archive site, extracted
// into an on-disk cache (default ~/.tsmp/datasets/UCR_UEA), and parsed from
// their UCR TXT form into timeseries.Dataset values. Loading is cached:
// the download cost is paid once per dataset unless caching is disabled.
//
// The archive site ships a handful of misnamed files; a fixed rename table
// corrects the known cases (e.g. StarlightCurves → StarLightCurves) so
// callers can use the documented dataset names.
package datasets
