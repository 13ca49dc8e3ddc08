/*
Package storagemodels holds the parameter and result types shared by the
datastore backends: query parameters, stream results and the functional
options that configure streaming (buffer size, page size, retries,
progress reporting).
*/
package storagemodels
