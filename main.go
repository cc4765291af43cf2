// jobportal is a client suite for the job portal backend: a CLI for
// seekers and employers, an embedded admin/consultancy web dashboard,
// and a local career-assistant chatbot with persisted history.
package main

import "github.com/Ayushs57139/jobportal-go/internal/cli"

func main() {
	cli.FatalIfErr(cli.Execute())
}
