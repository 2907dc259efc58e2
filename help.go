// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

// keyBindingsMarkdown is shared by the usage guide and the interactive help pane.
const keyBindingsMarkdown = `# Keys
* **Enter**: insert the values typed in the input field
* **Ctrl+R**: reset the tree
* **Ctrl+Y**: copy the drawing to the clipboard
* **PgUp/PgDn, Up/Down**: scroll the drawing
* **F1**: show or hide this help
* **Esc, Ctrl+C**: quit
`

func getHelpMarkdown() string {
	return fmt.Sprintf(`

 **avlviz %s**

Watch an AVL tree balance itself as you insert numbers.

Built with Go %s

# 1. Commands
* **avlviz** or **avlviz run [values...]**: interactive mode
* **avlviz insert <values...>**: insert values and print the tree
* **avlviz load <file|->**: insert every value found in a file or standard input
* **avlviz settings**: show the configuration in ~/.avlviz.yaml
* **avlviz version**: print the version

# 2. Input
* Values are separated by spaces or commas: 3 2 1 or 3,2,1
* Anything that is not a finite number is skipped
* A value already in the tree is skipped

%s
# Please be aware
* Copy to clipboard on Linux or Unix requires 'xclip' or 'xsel' to be installed

# License
Licensed under the Apache License, Version 2.0

`, version, runtime.Version(), keyBindingsMarkdown)
}

func getHelpMessage() string {
	result := markdown.Render(getHelpMarkdown(), 80, 3)
	return string(result)
}
