// Package services holds the error taxonomy shared by the external tool
// clients and the pipeline, plus the client packages for the executables
// this tool drives (rpf-cli and vgmstream-cli).
package services
