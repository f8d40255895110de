package serverdownload

import (
	"html/template"
)

type indexArchive struct {
	Name    string
	Title   string
	Note    string
	SizeMiB string
}

type indexData struct {
	Title    string
	Archives []indexArchive
}

var indexTmpl = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<title>{{.Title}}</title>
	<style>
		* { margin: 0; padding: 0; box-sizing: border-box; }
		body {
			font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Arial, sans-serif;
			line-height: 1.6;
			color: #333;
			background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
			min-height: 100vh;
			display: flex;
			align-items: center;
			justify-content: center;
			padding: 20px;
		}
		.container {
			background: white;
			border-radius: 20px;
			box-shadow: 0 20px 60px rgba(0,0,0,0.3);
			max-width: 800px;
			width: 100%;
			padding: 50px;
		}
		h1 { color: #667eea; font-size: 2.5em; margin-bottom: 10px; text-align: center; }
		h2 { color: #764ba2; margin-top: 30px; margin-bottom: 15px; }
		.download-section {
			background: #f8f9fa;
			border-radius: 15px;
			padding: 30px;
			margin: 30px 0;
			text-align: center;
		}
		.download-btn {
			display: inline-block;
			background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
			color: white;
			text-decoration: none;
			padding: 18px 40px;
			border-radius: 50px;
			font-size: 1.2em;
			font-weight: 600;
		}
		.file-info { margin-top: 15px; color: #666; font-size: 0.95em; }
	</style>
</head>
<body>
	<div class="container">
		<h1>{{.Title}}</h1>
		{{range .Archives}}
		<h2>{{.Title}}</h2>
		<div class="download-section">
			<a href="{{.Name}}" class="download-btn" download>Download</a>
			<div class="file-info">
				File: {{.Name}}<br>
				Size: {{.SizeMiB}} MB{{if .Note}}<br>
				{{.Note}}{{end}}
			</div>
		</div>
		{{end}}
	</div>
</body>
</html>
`))
