package config

const DefaultConfig = `
version: "1"
watch-dir: ~/Documents/hotfolder/in
move-to: ~/Documents/hotfolder/done
print: false
`
