package main

import (
	"fmt"
)

const complete = `#! /bin/bash

_udcheck_autocomplete() {
    local cur opts

    cur="${COMP_WORDS[COMP_CWORD]}"

    # files are completed by bash itself
    if [[ "$cur" != -* && $COMP_CWORD -gt 1 ]]; then
        COMPREPLY=( $(compgen -f -- "$cur") )
        return 0
    fi

    opts=$( "${COMP_WORDS[@]:0:$COMP_CWORD}" --generate-bash-completion 2>/dev/null )
    COMPREPLY=( $(compgen -W "$opts" -- "$cur") $(compgen -f -- "$cur") )
    return 0
}

complete -o filenames -F _udcheck_autocomplete udcheck
`

func bashCommand(ui UI) error {
	_, err := fmt.Fprint(ui.Out, complete)
	return err
}
